package main

import "flag"

type cliFlags struct {
	targetURL  string
	configFile string
	jsonOutput string
	htmlOutput string
	logLevel   string
	noColor    bool
}

func parseFlags() cliFlags {
	var f cliFlags

	targetURL := flag.String("url", "", "Target URL to scan. Without it, siteprobe prompts interactively.")
	targetURLAlias := flag.String("u", "", "Alias for -url")

	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	jsonOutput := flag.String("output", "", "Write the scan report to this file as JSON.")
	jsonOutputAlias := flag.String("o", "", "Alias for -output")

	flag.StringVar(&f.htmlOutput, "html", "", "Write the scan report to this file as HTML.")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config file).")
	flag.BoolVar(&f.noColor, "no-color", false, "Disable colored console output.")
	flag.Parse()

	// Consolidate alias flags
	f.targetURL = *targetURL
	if f.targetURL == "" {
		f.targetURL = *targetURLAlias
	}
	f.configFile = *configFile
	if f.configFile == "" {
		f.configFile = *configFileAlias
	}
	f.jsonOutput = *jsonOutput
	if f.jsonOutput == "" {
		f.jsonOutput = *jsonOutputAlias
	}

	return f
}
