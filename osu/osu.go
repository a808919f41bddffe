// Package osu decodes osu!mania beatmaps (.osu) into the chart model.
// Only the sections the calculator needs are parsed: metadata, key mode,
// timing points and hit objects.
package osu

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Glubus/minacalc-go/model"
)

// ErrNotMania means the beatmap is not an osu!mania chart.
var ErrNotMania = errors.New("beatmap is not an osu!mania chart")

// ErrNotBeatmap means the content is not an osu beatmap at all.
var ErrNotBeatmap = errors.New("content is not an osu beatmap")

const maniaMode = 3

// playfieldWidth is the osu x-coordinate range columns are spread over.
const playfieldWidth = 512

// ParseFile decodes a .osu file from disk.
func ParseFile(path string) (*model.Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read beatmap file")
	}
	chart, err := Parse(string(data))
	return chart, errors.Wrapf(err, "decode %s", path)
}

// Parse decodes .osu content into a chart.
func Parse(content string) (*model.Chart, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	if !scanner.Scan() || !strings.Contains(scanner.Text(), "osu file format") {
		return nil, ErrNotBeatmap
	}

	chart := &model.Chart{}
	mode := 0
	circleSize := 0.0
	section := ""

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			continue
		}

		switch section {
		case "General", "Metadata", "Difficulty":
			key, value, ok := splitKeyValue(line)
			if !ok {
				continue
			}
			switch key {
			case "Mode":
				m, err := strconv.Atoi(value)
				if err != nil {
					return nil, errors.Wrapf(err, "parse Mode %q", value)
				}
				mode = m
			case "CircleSize":
				cs, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return nil, errors.Wrapf(err, "parse CircleSize %q", value)
				}
				circleSize = cs
			case "Title":
				chart.Metadata.Title = value
			case "Artist":
				chart.Metadata.Artist = value
			case "Creator":
				chart.Metadata.Creator = value
			case "Version":
				chart.Metadata.Version = value
			}
		case "TimingPoints":
			tp, err := parseTimingPoint(line)
			if err != nil {
				return nil, err
			}
			chart.TimingPoints = append(chart.TimingPoints, tp)
		case "HitObjects":
			// key count must be known before columns can be derived;
			// resolve hit objects in a second pass below
		}
	}

	if mode != maniaMode {
		return nil, ErrNotMania
	}
	chart.KeyCount = int(circleSize)

	notes, err := parseHitObjects(content, chart.KeyCount)
	if err != nil {
		return nil, err
	}
	chart.Notes = notes

	return chart, nil
}

func splitKeyValue(line string) (string, string, bool) {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

// parseTimingPoint decodes one TimingPoints row:
// time,beatLength,meter,sampleSet,sampleIndex,volume,uninherited,effects
// Older format versions omit trailing fields.
func parseTimingPoint(line string) (model.TimingPoint, error) {
	var tp model.TimingPoint

	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return tp, errors.Errorf("malformed timing point %q", line)
	}

	timeMs, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return tp, errors.Wrapf(err, "parse timing point time %q", fields[0])
	}
	beatLength, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return tp, errors.Wrapf(err, "parse beat length %q", fields[1])
	}

	tp.TimeUs = int64(math.Round(timeMs * 1000))

	// negative beat length marks an inherited (SV) point; newer formats
	// also carry an explicit uninherited flag
	inherited := beatLength < 0
	if len(fields) >= 7 {
		inherited = strings.TrimSpace(fields[6]) == "0"
	}
	tp.Inherited = inherited

	if !inherited && beatLength > 0 {
		tp.Bpm = 60_000.0 / beatLength
	}
	if len(fields) >= 3 {
		if meter, err := strconv.Atoi(strings.TrimSpace(fields[2])); err == nil && meter > 0 {
			tp.Signature = uint8(meter)
		}
	}
	return tp, nil
}

// parseHitObjects decodes HitObjects rows: x,y,time,type,hitSound[,...].
// Holds contribute their head as a note, matching how the calculator
// treats long notes.
func parseHitObjects(content string, keyCount int) ([]model.RawNote, error) {
	if keyCount <= 0 {
		return nil, errors.Errorf("invalid key count %d", keyCount)
	}

	var notes []model.RawNote
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	inSection := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			inSection = line == "[HitObjects]"
			continue
		}
		if !inSection || line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 4 {
			return nil, errors.Errorf("malformed hit object %q", line)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse hit object x %q", fields[0])
		}
		timeMs, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse hit object time %q", fields[2])
		}

		notes = append(notes, model.RawNote{
			TimeUs: int64(math.Round(timeMs * 1000)),
			Column: columnFromX(x, keyCount),
		})
	}
	return notes, nil
}

// columnFromX maps an osu x-coordinate to a column index. Columns are
// evenly spread over the playfield: for 4K, x=64 is column 0, x=448 is
// column 3.
func columnFromX(x float64, keyCount int) uint8 {
	col := int(x * float64(keyCount) / playfieldWidth)
	if col < 0 {
		col = 0
	}
	if col >= keyCount {
		col = keyCount - 1
	}
	return uint8(col)
}
