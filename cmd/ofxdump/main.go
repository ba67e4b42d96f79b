// Command ofxdump prints every event found in OFX and OFC files.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/rockstardevs/ofxevent"
	"github.com/rockstardevs/ofxevent/preprocess"
)

var (
	numWorkers = flag.Int("num_workers", 3, "number of workers to process files concurrently.")
	jobsBuffer = flag.Int("jobs_buffer_size", 10, "numbers of jobs to buffer at a time.")
	errorLimit = flag.Int("error_limit", 0, "stop parsing a file after this many errors, 0 for no limit.")
	fileType   = flag.String("file_type", "", "force the file type, OFX or OFC, instead of detecting it.")
	timezone   = flag.String("timezone", "Local", "timezone dates are printed in.")
	listTags   = flag.Bool("list_tags", false, "print the tags that are parsed into events and exit.")
)

// stdout serializes the output of the workers.
var stdout sync.Mutex

// processFile processes the input files sent on jobs.
func processFile(index int, jobs <-chan string, opts []ofxevent.Option, wg *sync.WaitGroup) {
	glog.Infof("started worker %d", index)
	defer wg.Done()
	for filename := range jobs {
		glog.Infof("worker %d: processing %s", index, filename)
		var out strings.Builder
		fmt.Fprintf(&out, "== %s\n", filename)
		ctx := ofxevent.NewContext(opts...)
		register(ctx, &out)
		if err := ctx.ProcessFile(filename); err != nil {
			glog.Errorf("worker %d: error processing %s - %s", index, filename, err)
		}
		stdout.Lock()
		fmt.Print(out.String())
		stdout.Unlock()
	}
	glog.Infof("shutting down worker %d", index)
}

func options() ([]ofxevent.Option, error) {
	loc, err := time.LoadLocation(*timezone)
	if err != nil {
		return nil, err
	}
	opts := []ofxevent.Option{ofxevent.WithLocation(loc), ofxevent.WithErrorLimit(*errorLimit)}
	switch strings.ToUpper(*fileType) {
	case "":
	case "OFX":
		opts = append(opts, ofxevent.WithFileType(preprocess.OFX))
	case "OFC":
		opts = append(opts, ofxevent.WithFileType(preprocess.OFC))
	default:
		return nil, fmt.Errorf("error - unknown file type %q", *fileType)
	}
	return opts, nil
}

func main() {
	flag.Parse()

	if *listTags {
		for _, tag := range ofxevent.KnownTags() {
			fmt.Println(tag)
		}
		return
	}
	opts, err := options()
	if err != nil {
		glog.Errorf("%s", err)
		os.Exit(2)
	}

	// Start workers
	var wg sync.WaitGroup
	jobsChan := make(chan string, *jobsBuffer)
	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go processFile(i, jobsChan, opts, &wg)
	}

	// Distribute files for processing.
	for _, filename := range flag.Args() {
		jobsChan <- filename
	}
	close(jobsChan)

	// Block for all files to be processed.
	wg.Wait()
	glog.Flush()
}
