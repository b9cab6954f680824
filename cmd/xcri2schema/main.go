// Command xcri2schema converts XCRI-CAP course catalogues into schema.org
// graphs.
//
// Usage:
//
//	xcri2schema [flags] <catalog.xml | feed URL>...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"course-graph/internal/config"
	"course-graph/internal/convert"
	"course-graph/internal/export"
	"course-graph/internal/httpx"
	"course-graph/internal/mappers"
	"course-graph/internal/s3store"
	"course-graph/internal/sftpclient"
	"course-graph/internal/source"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	outDir    string
	format    string
	brotli    bool
	upload    string
	workers   int
	schemes   string
	lang      string
	logLevel  string
	logFormat string
	inputs    []string
}

func parseFlags(args []string, cfg config.Config, errW io.Writer) (options, error) {
	fs := flag.NewFlagSet("xcri2schema", flag.ContinueOnError)
	fs.SetOutput(errW)

	var o options
	fs.StringVar(&o.outDir, "out-dir", "out", "directory for the written graphs")
	fs.StringVar(&o.format, "format", string(export.FormatJSONLD), "output format: jsonld, nt or csv")
	fs.BoolVar(&o.brotli, "brotli", false, "brotli-compress output files (.br)")
	fs.StringVar(&o.upload, "upload", "", "publish outputs after writing: sftp or s3")
	fs.IntVar(&o.workers, "workers", cfg.Workers, "documents converted in parallel")
	fs.StringVar(&o.schemes, "schemes", cfg.SchemesFile, "YAML file of subject classification schemes")
	fs.StringVar(&o.lang, "lang", cfg.Language, "language tag for every literal")
	fs.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&o.logFormat, "log-format", "text", "text or json")
	fs.Usage = func() {
		fmt.Fprintln(errW, "usage: xcri2schema [flags] <catalog.xml | feed URL>...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.inputs = fs.Args()
	if len(o.inputs) == 0 {
		fs.Usage()
		return o, fmt.Errorf("no input catalogue given")
	}
	return o, nil
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, args []string, outW, errW io.Writer) int {
	cfg := config.Load()

	o, err := parseFlags(args, cfg, errW)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(errW, "error:", err)
		return 2
	}

	log := newLogger(o.logLevel, o.logFormat, errW)

	format, err := export.ParseFormat(o.format)
	if err != nil {
		log.Error("invalid flags", "error", err)
		return 2
	}

	schemes, err := config.LoadSchemes(o.schemes)
	if err != nil {
		log.Error("loading schemes", "error", err)
		return 1
	}

	publisher, err := newPublisher(o.upload, cfg)
	if err != nil {
		log.Error("configuring upload", "error", err)
		return 1
	}

	opener := source.Opener{
		Client: &http.Client{Timeout: cfg.FetchTimeout},
		Retry:  httpx.DefaultRetryConfig(),
	}
	conv := convert.New(opener, convert.Options{
		Mapper: mappers.Options{Language: o.lang, Schemes: schemes},
		Output: export.FileOptions{
			Dir:      o.outDir,
			Format:   format,
			Language: o.lang,
			Brotli:   o.brotli,
		},
		Publisher: publisher,
		Workers:   o.workers,
	}, log)

	start := time.Now()
	res := conv.Batch(ctx, o.inputs)

	for i, out := range res.Outputs {
		if out == nil {
			fmt.Fprintf(outW, "FAILED %s: %v\n", o.inputs[i], res.Errors[i])
			continue
		}
		fmt.Fprintf(outW, "wrote %s (%s)\n", out.Path, out.Result.Summary)
	}
	log.Info("job finished", "elapsed", time.Since(start).Round(time.Millisecond))

	if res.Failed > 0 {
		return 1
	}
	return 0
}

// newPublisher builds the upload target named by kind; "" means none.
func newPublisher(kind string, cfg config.Config) (convert.Publisher, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "":
		return nil, nil
	case "sftp":
		return sftpclient.NewUploader(sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
			KnownHostsFile:        cfg.SFTPKnownHosts,
		}), nil
	case "s3":
		return s3store.New(s3store.Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			UseSSL:    cfg.S3UseSSL,
			Prefix:    cfg.S3Prefix,
		})
	}
	return nil, fmt.Errorf("unknown upload target %q (want sftp or s3)", kind)
}
