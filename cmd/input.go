package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/luca-patrignani/showdown/domain/poker"
)

type deal struct {
	source string // argument or line number, for error messages
	left   poker.Hand
	right  poker.Hand
}

// readDeals parses one deal per argument. Without arguments it reads one deal
// per line from r, skipping blank lines and lines starting with '#'.
func readDeals(args []string, r io.Reader) ([]deal, error) {
	var deals []deal
	if len(args) > 0 {
		for i, arg := range args {
			d, err := parseDeal(fmt.Sprintf("argument %d", i+1), arg)
			if err != nil {
				return nil, err
			}
			deals = append(deals, d)
		}
		return deals, nil
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		d, err := parseDeal(fmt.Sprintf("line %d", line), text)
		if err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read deals: %w", err)
	}
	return deals, nil
}

func parseDeal(source, text string) (deal, error) {
	left, right, err := poker.ParseDeal(text)
	if err != nil {
		return deal{}, fmt.Errorf("%s: %w", source, err)
	}
	return deal{source: source, left: left, right: right}, nil
}
