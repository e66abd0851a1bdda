package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/firewall/internal/game"
)

// DefaultParser reads beat maps with one timestamp in seconds per line.
// Anything after a # is a comment and blank lines are skipped.
//
//	# kicks, 85 bpm
//	0.706
//	2.118
type DefaultParser struct{}

// Longest timestamp a time.Duration can hold.
var maxSeconds = float64(math.MaxInt64) / float64(time.Second)

func (p *DefaultParser) Parse(file string) (*game.Schedule, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read beat map: %w", err)
	}
	s, err := p.Read(bytes.NewReader(data))
	if nil != err {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return s, nil
}

func (p *DefaultParser) Read(r io.Reader) (*game.Schedule, error) {
	beats := []time.Duration{}
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seconds, err := strconv.ParseFloat(line, 64)
		if nil != err || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return nil, fmt.Errorf("line %d %q: %w", n, line, ErrSyntax)
		}
		if seconds > maxSeconds {
			return nil, fmt.Errorf("line %d %q out of range: %w", n, line, ErrSyntax)
		}
		beats = append(beats, time.Duration(math.Round(seconds*1e6))*time.Microsecond)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return game.NewSchedule(beats)
}
