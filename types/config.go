package types

import (
	"errors"
	"io/ioutil"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"auramed.com/copilot/logger"
	"gopkg.in/yaml.v3"
)

// SoapKeywords holds the per-section keyword lists used by the SOAP
// extractor. Matching is case-insensitive substring membership.
type SoapKeywords struct {
	Subjective []string `yaml:"subjective" json:"subjective"`
	Objective  []string `yaml:"objective" json:"objective"`
	Assessment []string `yaml:"assessment" json:"assessment"`
	Plan       []string `yaml:"plan" json:"plan"`
}

// RuleSet is an optional override for the built-in rule tables. Empty lists
// mean "keep the default".
type RuleSet struct {
	Name           string       `json:"name"`
	FilePath       string       `json:"file_path"`
	SoapKeywords   SoapKeywords `yaml:"soap_keywords" json:"soap_keywords"`
	Chads2Triggers []string     `yaml:"chads2_triggers" json:"chads2_triggers"`
	DrugMentions   []string     `yaml:"drug_mentions" json:"drug_mentions"`
}

func (rs RuleSet) IsEmpty() bool {
	return len(rs.SoapKeywords.Subjective) == 0 &&
		len(rs.SoapKeywords.Objective) == 0 &&
		len(rs.SoapKeywords.Assessment) == 0 &&
		len(rs.SoapKeywords.Plan) == 0 &&
		len(rs.Chads2Triggers) == 0 &&
		len(rs.DrugMentions) == 0
}

func LoadRuleConfigs(dirPath string) ([]RuleSet, error) {
	copilotLogger := logger.NewLogger("LoadRuleConfigs")

	files, err := ioutil.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	ruleSetChan := make(chan RuleSet, len(files))
	for _, f := range files {
		// Skip dirs and non-yaml files
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}

		wg.Add(1)
		go func(file os.FileInfo) {
			defer wg.Done()
			rs := RuleSet{
				Name:     strings.Split(file.Name(), ".yaml")[0],
				FilePath: path.Join(dirPath, file.Name()),
			}
			buf, err := ioutil.ReadFile(rs.FilePath)
			if err != nil {
				copilotLogger.Err(err)
				return
			}
			if err := yaml.Unmarshal(buf, &rs); err != nil {
				copilotLogger.Err(err)
				return
			}

			if rs.IsEmpty() {
				copilotLogger.Err(errors.New("rule set overrides nothing"))
				return
			}

			ruleSetChan <- rs
		}(f)
	}

	go func() {
		wg.Wait()
		close(ruleSetChan)
	}()

	ruleSets := make([]RuleSet, 0, len(ruleSetChan))
	for rs := range ruleSetChan {
		ruleSets = append(ruleSets, rs)
	}
	// Files are read concurrently; later rule sets override earlier ones, so
	// the order must not depend on goroutine completion.
	sort.Slice(ruleSets, func(i, j int) bool {
		return ruleSets[i].Name < ruleSets[j].Name
	})
	return ruleSets, nil
}
