// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

// Command inscript converts an HTML document, read from stdin or a file
// path, into plain text or an annotated representation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/ssor/bom"

	inscriptis "github.com/weichselbraun/inscriptis-go"
	"github.com/weichselbraun/inscriptis-go/annotation/output"
)

const (
	version   = "0.1.0"
	copyright = "Copyright 2026 Albert Weichselbraun"
	license   = "Apache-2.0"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTION]... [FILE]\nConvert an HTML document to plain text.\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	output_ := flag.String("o", "", "Output file (default: stdout)")
	_ = flag.String("e", "utf-8", "Input character encoding")
	images := flag.Bool("i", false, "Display image captions")
	dedupe := flag.Bool("d", false, "Suppress duplicate, consecutive image captions")
	links := flag.Bool("l", false, "Display link targets")
	anchors := flag.Bool("a", false, "Display anchor targets")
	rules := flag.String("r", "", "Path to a JSON file of annotation rules")
	postproc := flag.String("p", "", "Postprocessor: surface, xml, or html")
	indentation := flag.String("indentation", "extended", "CSS profile: extended or strict")
	cellSep := flag.String("table-cell-separator", "  ", "String placed between adjacent table cells")
	_ = flag.Duration("timeout", 0, "Timeout when fetching an http(s):// source")
	showVersion := flag.Bool("v", false, "Print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("inscript %s\n%s\nLicensed under %s.\n", version, copyright, license)
		os.Exit(0)
	}

	raw, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(-1)
	}

	config := inscriptis.DefaultParserConfig()
	if *indentation == "strict" {
		config.CSS = inscriptis.StrictProfile()
	}
	config.DisplayImages = *images
	config.DeduplicateCaptions = *dedupe
	config.DisplayLinks = *links
	config.DisplayAnchors = *anchors
	config.TableCellSeparator = *cellSep

	if *rules != "" {
		rulesMap, err := readAnnotationRules(*rules)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
			os.Exit(-1)
		}
		config.AnnotationRules = rulesMap
	}

	out := os.Stdout
	if *output_ != "" {
		f, err := os.Create(*output_)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
			os.Exit(-1)
		}
		defer f.Close()
		out = f
	}

	if err := convert(raw, config, *postproc, out); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(-1)
	}
}

func readInput(path string) (string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrap(err, "reading input")
	}
	return string(bom.CleanBom(data)), nil
}

func readAnnotationRules(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading annotation rules")
	}
	var rules map[string][]string
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, errors.Wrap(err, "parsing annotation rules")
	}
	return rules, nil
}

func convert(htmlSrc string, config *inscriptis.ParserConfig, postproc string, out io.Writer) error {
	if postproc == "" {
		text, err := inscriptis.GetText(htmlSrc, config)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, text)
		return err
	}

	annotated, err := inscriptis.GetAnnotatedText(htmlSrc, config)
	if err != nil {
		return err
	}

	extractor, err := postprocessor(postproc)
	if err != nil {
		return err
	}

	result, err := extractor.Extract(output.AnnotatedText{Text: annotated.Text, Label: annotated.Label})
	if err != nil {
		return err
	}

	if extractor.Verbatim() {
		_, err = fmt.Fprintln(out, result)
		return err
	}

	enc := json.NewEncoder(out)
	return enc.Encode(result)
}

func postprocessor(name string) (output.Extractor, error) {
	switch name {
	case "surface":
		return output.Surface{}, nil
	case "xml":
		return output.XML{}, nil
	case "html":
		return output.HTML{}, nil
	default:
		return nil, errors.Errorf("unknown postprocessor %q", name)
	}
}
