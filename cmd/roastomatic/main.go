package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.bug.st/serial"

	"github.com/toddjobe/roastomatic"
	"github.com/toddjobe/roastomatic/config"
	"github.com/toddjobe/roastomatic/twchart"
	"github.com/toddjobe/roastomatic/ui"
)

func main() {
	var (
		cfgPath    = flag.String("config", "roastomatic.yaml", "path to the YAML config file")
		portName   = flag.String("port", "", "serial port, overriding the config file")
		sim        = flag.Bool("sim", false, "run against a simulated roaster instead of a serial port")
		session    = flag.String("session", "", "chart session name, overriding the config file")
		probesFlag = flag.String("probes", "", `probe mapping like "1=Intake,2=Beans", overriding the config file`)
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *portName != "" {
		cfg.Serial.Port = *portName
	}
	if *session != "" {
		cfg.TWChart.Session = *session
	}
	if *probesFlag != "" {
		cfg.TWChart.Probes = *probesFlag
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var telemetry io.Reader
	var remote io.Writer
	if *sim {
		telemetry, remote = startSim(ctx, cfg)
	} else {
		port, err := serial.Open(cfg.Serial.Port, &serial.Mode{BaudRate: cfg.Serial.BaudRate})
		if err != nil {
			log.Fatalf("opening %s: %v", cfg.Serial.Port, err)
		}
		defer port.Close()
		telemetry, remote = port, port
	}

	logFile, err := openDataFile(cfg.Data.Dir)
	if err != nil {
		log.Fatalf("creating data file: %v", err)
	}
	defer logFile.Close()
	log.Printf("logging telemetry to %s", logFile.Name())

	recorder := newRecorder(ctx, cfg)

	// stdin bytes pass through as remote commands
	go func() {
		io.Copy(remote, os.Stdin)
	}()

	if os.Getenv("ENABLE_UI") == "true" {
		monitor := ui.NewMonitor(remote)
		go func() {
			defer cancel()
			if err := consume(ctx, telemetry, logFile, recorder, monitor.Update); err != nil {
				log.Printf("telemetry stream ended: %v", err)
			}
		}()
		monitor.Run(ctx)
		return
	}

	if err := consume(ctx, telemetry, logFile, recorder, nil); err != nil {
		log.Fatalf("telemetry stream ended: %v", err)
	}
}

// consume tees raw telemetry lines to the data file and stdout, and feeds
// parsed records to the chart recorder and the optional UI. Lines that don't
// parse are logged and skipped; the roaster prints human-oriented output like
// the command help on the same port.
func consume(ctx context.Context, r io.Reader, logFile *os.File, rec *twchart.Recorder, onRecord func(roastomatic.Record)) error {
	out := io.MultiWriter(os.Stdout, logFile)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		fmt.Fprintln(out, line)

		record, err := roastomatic.ParseRecord(line)
		if err != nil {
			log.Printf("skipping line %q: %v", line, err)
			continue
		}

		if err := rec.Observe(ctx, record); err != nil {
			log.Printf("chart upload: %v", err)
		}
		if onRecord != nil {
			onRecord(record)
		}
	}
	return scanner.Err()
}

func newRecorder(ctx context.Context, cfg *config.Config) *twchart.Recorder {
	if cfg.TWChart.Address == "" {
		return twchart.NewRecorder(twchart.NoopAPI{})
	}

	probes, err := twchart.ParseProbes(cfg.TWChart.Probes)
	if err != nil {
		log.Fatalf("parsing probes: %v", err)
	}

	name := cfg.TWChart.Session
	if name == "" {
		name = "Roast " + time.Now().Format("2006-01-02 15:04")
	}

	r := twchart.NewRecorder(twchart.NewClient(cfg.TWChart.Address))
	if err := r.Start(ctx, name, probes); err != nil {
		log.Fatalf("creating chart session: %v", err)
	}
	return r
}

func openDataFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("roastomatic_%s.txt", time.Now().Format("20060102_150405"))
	return os.Create(filepath.Join(dir, name))
}
