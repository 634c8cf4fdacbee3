// Package csvio reads and writes the probability records of the game as
// CSV, one row per strategy profile.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"

	"github.com/timpalpant/geonash"
	"github.com/timpalpant/geonash/matrixgame"
	"github.com/timpalpant/geonash/payoff"
)

var profileColumns = [matrixgame.NumPlayers]string{"p1_strat", "p2_strat", "p3_strat"}
var labelColumns = [matrixgame.NumPlayers]string{"p1_label", "p2_label", "p3_label"}
var computedColumns = [matrixgame.NumPlayers]string{
	"computed_opp_payoff",
	"computed_reg_payoff",
	"computed_isr_payoff",
}

// probabilityColumns are the 17 probability columns, in Record.Fields order.
var probabilityColumns = func() []string {
	var result []string
	for _, f := range (payoff.Record{}).Fields() {
		result = append(result, f.Name)
	}
	return result
}()

// Header returns the columns written by WriteRecords.
func Header() []string {
	var header []string
	for i := range profileColumns {
		header = append(header, profileColumns[i], labelColumns[i])
	}
	header = append(header, probabilityColumns...)
	return append(header, computedColumns[:]...)
}

// ReadRecords parses probability records from CSV. The header must
// contain the strategy columns and all 17 probability columns; other
// columns are ignored. Each strategy profile may appear at most once.
// Completeness is not checked here.
func ReadRecords(r io.Reader) (*geonash.Records, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read CSV header")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	required := append(profileColumns[:], probabilityColumns...)
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, errors.Errorf("missing required column: %v", name)
		}
	}

	var records geonash.Records
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrapf(err, "read CSV line %d", line)
		}

		p, r, err := parseRow(row, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}

		if records.Get(p) != nil {
			return nil, errors.Errorf("line %d: duplicate strategy profile %v", line, p)
		}

		if err := records.Set(p, r); err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
	}

	if missing := records.Missing(); len(missing) > 0 {
		glog.Warningf("CSV has no record for %d strategy profiles: %v", len(missing), missing)
	}

	return &records, nil
}

func parseRow(row []string, columns map[string]int) (matrixgame.Profile, payoff.Record, error) {
	var p matrixgame.Profile
	for i, name := range profileColumns {
		v, err := strconv.Atoi(strings.TrimSpace(row[columns[name]]))
		if err != nil {
			return p, payoff.Record{}, errors.Wrapf(err, "column %v", name)
		}
		p[i] = v
	}

	values := make([]float64, len(probabilityColumns))
	for i, name := range probabilityColumns {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[columns[name]]), 64)
		if err != nil {
			return p, payoff.Record{}, errors.Wrapf(err, "column %v", name)
		}
		values[i] = v
	}

	return p, recordFromValues(values), nil
}

func recordFromValues(v []float64) payoff.Record {
	return payoff.Record{
		Opposition: payoff.OppositionProbs{
			BI: v[0], IS: v[1], MD: v[2], LoC: v[3], PR: v[4], CL: v[5], MI: v[6],
		},
		Regime: payoff.RegimeProbs{
			S: v[7], M: v[8], R: v[9], C: v[10], V: v[11],
		},
		Israel: payoff.IsraelProbs{
			G1: v[12], G2: v[13], G3: v[14], G4: v[15], G5: v[16],
		},
	}
}

// WriteRecords writes every present record as one CSV row, in profile
// order, together with strategy labels and the payoffs computed with cfg.
func WriteRecords(w io.Writer, cfg payoff.Config, records *geonash.Records) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header()); err != nil {
		return err
	}

	for _, p := range geonash.GameShape.Profiles() {
		r := records.Get(p)
		if r == nil {
			continue
		}

		var row []string
		for i := range p {
			player := matrixgame.Player(i)
			row = append(row, strconv.Itoa(p[i]), geonash.ShortStrategyLabel(player, p[i]))
		}
		for _, f := range r.Fields() {
			row = append(row, strconv.FormatFloat(f.Value, 'g', -1, 64))
		}
		for _, v := range payoff.Payoffs(cfg, *r) {
			row = append(row, fmt.Sprintf("%.2f", v))
		}

		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadFile reads records from a CSV file, which is decompressed if its
// name ends in ".gz".
func ReadFile(filename string) (*geonash.Records, error) {
	glog.Infof("Loading probabilities from: %v", filename)
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "open gzip stream %v", filename)
		}
		defer gzr.Close()
		r = gzr
	}

	records, err := ReadRecords(r)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %v", filename)
	}

	return records, nil
}

// WriteFile writes records to a CSV file, compressed if its name ends
// in ".gz".
func WriteFile(filename string, cfg payoff.Config, records *geonash.Records) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if !strings.HasSuffix(filename, ".gz") {
		if err := WriteRecords(f, cfg, records); err != nil {
			return err
		}
		return f.Close()
	}

	gzw := gzip.NewWriter(f)
	if err := WriteRecords(gzw, cfg, records); err != nil {
		return err
	}
	if err := gzw.Close(); err != nil {
		return err
	}

	return f.Close()
}
