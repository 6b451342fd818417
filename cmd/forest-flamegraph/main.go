package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/lestrrat-go/forest"
	"github.com/lestrrat-go/forest/s11n"
)

const usage = `forest-flamegraph - Profile HTML tree construction and view the result

Usage:
  forest-flamegraph [options] <html-file>

Options:
  -iterations int    Number of parse iterations (default: 2000)
  -port int          HTTP server port (default: 8080)
  -profile string    Profile type: cpu, mem (default: cpu)
  -json              Also encode every document as JSON
  -help              Show this help message

The profile is written to forest_<profile>.prof. If go-torch is on the
PATH an SVG flamegraph is generated and served, otherwise the profile is
opened in the pprof web interface.
`

func main() {
	var (
		iterations = flag.Int("iterations", 2000, "Number of parse iterations")
		port       = flag.Int("port", 8080, "HTTP server port")
		profile    = flag.String("profile", "cpu", "Profile type: cpu, mem")
		withJSON   = flag.Bool("json", false, "Also encode every document as JSON")
		help       = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		fmt.Print(usage)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: HTML file argument required\n\n")
		fmt.Print(usage)
		os.Exit(1)
	}

	if *profile != "cpu" && *profile != "mem" {
		fmt.Fprintf(os.Stderr, "Error: profile must be 'cpu' or 'mem'\n")
		os.Exit(1)
	}

	w := workload{iterations: *iterations, json: *withJSON}
	if err := run(flag.Arg(0), w, *port, *profile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type workload struct {
	iterations int
	json       bool
}

// parse runs the workload once over input.
func (w workload) parse(ctx context.Context, input []byte) (*forest.Document, error) {
	doc, err := forest.Parse(ctx, bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	if w.json {
		if err := s11n.EncodeJSON(io.Discard, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func run(htmlFile string, w workload, port int, profileType string) error {
	input, err := os.ReadFile(htmlFile)
	if err != nil {
		return fmt.Errorf("failed to read HTML file: %w", err)
	}

	fmt.Printf("HTML file: %s (%d bytes)\n", htmlFile, len(input))
	fmt.Printf("Profile type: %s, iterations: %d\n", profileType, w.iterations)

	profileFile := fmt.Sprintf("forest_%s.prof", profileType)
	switch profileType {
	case "cpu":
		err = cpuProfile(context.Background(), w, input, profileFile)
	case "mem":
		err = memProfile(context.Background(), w, input, profileFile)
	}
	if err != nil {
		return fmt.Errorf("failed to generate profile: %w", err)
	}
	fmt.Printf("Profile written to %s\n", profileFile)

	if !commandExists("go-torch") {
		fmt.Printf("go-torch not found, falling back to the pprof web interface\n")
		return startPprofServer(profileFile, port)
	}

	svgFile, err := svgFlamegraph(profileFile, profileType)
	if err != nil {
		fmt.Printf("Failed to generate flamegraph (%v), falling back to the pprof web interface\n", err)
		return startPprofServer(profileFile, port)
	}
	return serveSVG(svgFile, port)
}

func cpuProfile(ctx context.Context, w workload, input []byte, profileFile string) error {
	f, err := os.Create(profileFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return err
	}
	defer pprof.StopCPUProfile()

	for i := range w.iterations {
		if _, err := w.parse(ctx, input); err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}
	}
	return nil
}

func memProfile(ctx context.Context, w workload, input []byte, profileFile string) error {
	// keep the documents alive so that they show up in the heap profile
	docs := make([]*forest.Document, 0, w.iterations)
	for i := range w.iterations {
		doc, err := w.parse(ctx, input)
		if err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}
		docs = append(docs, doc)
	}

	f, err := os.Create(profileFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pprof.WriteHeapProfile(f); err != nil {
		return err
	}
	fmt.Printf("Retained %d documents\n", len(docs))
	return nil
}

func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch {
	case commandExists("xdg-open"):
		cmd = exec.Command("xdg-open", url)
	case commandExists("open"):
		cmd = exec.Command("open", url)
	case commandExists("cmd"):
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("no suitable browser opener found")
	}
	return cmd.Start()
}

func svgFlamegraph(profileFile, profileType string) (string, error) {
	svgFile := fmt.Sprintf("flamegraph_%s.svg", profileType)

	args := []string{"-b", profileFile, "-f", svgFile}
	if profileType == "mem" {
		args = append([]string{"--alloc_space"}, args...)
	}
	if output, err := exec.Command("go-torch", args...).CombinedOutput(); err != nil {
		return "", fmt.Errorf("go-torch failed: %w\nOutput: %s", err, output)
	}
	return svgFile, nil
}

func serveSVG(svgFile string, port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		http.ServeFile(w, r, svgFile)
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			fmt.Printf("HTTP server error: %v\n", err)
		}
	}()

	url := fmt.Sprintf("http://localhost:%d/", port)
	time.Sleep(time.Second)
	if err := openBrowser(url); err != nil {
		fmt.Printf("Could not open a browser, please open %s\n", url)
	}
	fmt.Printf("Serving %s at %s, press Ctrl+C to exit\n", svgFile, url)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func startPprofServer(profileFile string, port int) error {
	url := fmt.Sprintf("http://localhost:%d/ui/", port)

	cmd := exec.Command("go", "tool", "pprof", "-http", fmt.Sprintf(":%d", port), profileFile)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start pprof server: %w", err)
	}

	time.Sleep(2 * time.Second)
	if err := openBrowser(url); err != nil {
		fmt.Printf("Could not open a browser, please open %s\n", url)
	}
	fmt.Printf("pprof is running at %s, press Ctrl+C to stop\n", url)
	return cmd.Wait()
}
