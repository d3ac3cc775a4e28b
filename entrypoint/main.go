package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"auramed.com/copilot/api"
	"auramed.com/copilot/logger"
	"auramed.com/copilot/pipeline"
	"auramed.com/copilot/sampledata"
	"auramed.com/copilot/soap"
	"auramed.com/copilot/types"
	"auramed.com/copilot/worker"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	RuleConfigDir string `envconfig:"AURAMED_COPILOT_CONFIG_PATH"`
	RestAPIActive bool   `envconfig:"AURAMED_COPILOT_REST_API_ACTIVE" default:"false"`
	RestAPIPort   string `envconfig:"AURAMED_COPILOT_REST_API_PORT" default:"10000"`
}

const pipelineStartMaxRetries = 5

func main() {
	logger.SetupLogging()
	copilotLogger := logger.NewLogger("Main")
	fatalErrLogger := copilotLogger.Fatal().Caller()
	demoMode := flag.Bool("demo", false, "run the bundled samples through the pipeline and exit")
	flag.Parse()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}

	// Load Pipeline
	pipelineChannel := make(chan pipeline.Pipeline)
	ruleSetsChannel := make(chan []types.RuleSet, 1)
	go func() {
		for retry := 0; retry < pipelineStartMaxRetries; retry++ {
			var ruleSets []types.RuleSet
			if config.RuleConfigDir != "" {
				var err error
				ruleSets, err = types.LoadRuleConfigs(config.RuleConfigDir)
				if err != nil {
					copilotLogger.Err(err).Msg("Failed to load rule configurations. Retrying in 5 sec")
					time.Sleep(5 * time.Second)
					continue
				}
				copilotLogger.Info().Msgf("Loaded %d rule sets", len(ruleSets))
			}
			ppln, err := pipeline.NewCopilot(pipeline.CopilotParams{RuleSets: ruleSets})
			if err != nil {
				copilotLogger.Err(err).Msg("Failed to start co-pilot pipeline. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			copilotLogger.Info().Msg("Pipeline loaded")
			ruleSetsChannel <- ruleSets
			pipelineChannel <- ppln
			return
		}
		fatalErrLogger.Msg("Could not start pipeline after 5 retries, exiting")
		os.Exit(1)
	}()

	// block until pipeline loads
	ruleSets := <-ruleSetsChannel
	ppln := <-pipelineChannel

	if *demoMode {
		runDemo(ppln)
		return
	}

	if config.RestAPIActive {
		go func() {
			copilotLogger.Info().Msg("Starting API service")
			extractor := soap.NewExtractor(pipeline.MergedKeywords(ruleSets))
			handlers := api.NewHandlers(ppln, extractor)
			mux := http.NewServeMux()
			handlers.Register(mux)
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			copilotLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, mux)
			fatalErrLogger.Err(err).Msg("REST API stopped with error")
		}()
	}

	copilotLogger.Info().Msg("Start co-pilot worker")
	for {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			copilotLogger.Fatal().Err(err).Msg("Could not initialize RMQ worker")
			os.Exit(1)
		}
		err = rmqWorker.StartWorker()
		if err != nil {
			copilotLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}

// runDemo feeds the bundled transcription samples through the pipeline and
// prints the responses, so the engine can be exercised without RMQ, Redis or
// S3 around.
func runDemo(ppln pipeline.Pipeline) {
	for _, sample := range sampledata.All() {
		fmt.Printf("=== Sample %d: %s (%s)\n", sample.ID, sample.SampleName, sample.MedicalSpecialty)
		request := pipeline.Request{
			Tid:  fmt.Sprintf("demo-%d", sample.ID),
			Text: sample.Transcription,
		}
		response := <-ppln(request)
		var indented bytes.Buffer
		if err := json.Indent(&indented, []byte(response), "", "  "); err != nil {
			fmt.Println(response)
			continue
		}
		fmt.Println(indented.String())
	}
}
