// Command payoffset resolves forward curve payment offsets for a batch of
// fixing times. It reads a JSON object (or array of objects) from a file or
// stdin and writes results as JSON to stdout.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/meenmo/curvelib/calendar"
	"github.com/meenmo/curvelib/curve"
)

type offsetInput struct {
	TaskID           string    `json:"task_id,omitempty"`
	Name             string    `json:"name"`
	ReferenceDate    string    `json:"reference_date"`
	TenorCode        string    `json:"tenor_code,omitempty"`
	Calendar         string    `json:"calendar,omitempty"`
	RollConvention   string    `json:"roll_convention,omitempty"`
	FixedOffsetYears *float64  `json:"fixed_offset_years,omitempty"`
	DiscountCurve    string    `json:"discount_curve,omitempty"`
	FixingTimes      []float64 `json:"fixing_times"`
}

type offsetOutput struct {
	TaskID        string    `json:"task_id,omitempty"`
	Name          string    `json:"name"`
	ReferenceDate string    `json:"reference_date"`
	DiscountCurve string    `json:"discount_curve,omitempty"`
	FixingTimes   []float64 `json:"fixing_times"`
	Offsets       []float64 `json:"offsets"`
	PaymentTimes  []float64 `json:"payment_times"`
	Error         string    `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: payoffset -input <path>")
		fmt.Fprintln(os.Stderr, "Resolve forward curve payment offsets for a batch of fixing times.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: payoffset -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]offsetOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, offsetOutput{TaskID: in.TaskID, Name: in.Name, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func process(in offsetInput) (*offsetOutput, error) {
	referenceDate, err := time.Parse("2006-01-02", in.ReferenceDate)
	if err != nil {
		return nil, fmt.Errorf("invalid reference_date: %v", err)
	}
	if len(in.FixingTimes) == 0 {
		return nil, fmt.Errorf("no fixing_times")
	}

	fc, err := buildCurve(in, referenceDate)
	if err != nil {
		return nil, err
	}

	offsets := make([]float64, 0, len(in.FixingTimes))
	paymentTimes := make([]float64, 0, len(in.FixingTimes))
	for _, fixing := range in.FixingTimes {
		offset := fc.PaymentOffset(fixing)
		offsets = append(offsets, offset)
		paymentTimes = append(paymentTimes, fixing+offset)
	}

	return &offsetOutput{
		TaskID:        in.TaskID,
		Name:          in.Name,
		ReferenceDate: in.ReferenceDate,
		DiscountCurve: fc.DiscountCurveName(),
		FixingTimes:   in.FixingTimes,
		Offsets:       offsets,
		PaymentTimes:  paymentTimes,
	}, nil
}

func buildCurve(in offsetInput, referenceDate time.Time) (*curve.ForwardCurve, error) {
	if in.TenorCode != "" {
		if _, err := calendar.ParseTenor(in.TenorCode); err != nil {
			return nil, err
		}
		roll, err := calendar.ParseRollConvention(in.RollConvention)
		if err != nil {
			return nil, err
		}
		cal := calendar.Bundled(calendar.ID(in.Calendar))
		return curve.NewForwardCurve(in.Name, referenceDate, in.TenorCode, cal, roll, in.DiscountCurve), nil
	}
	if in.FixedOffsetYears == nil {
		return nil, fmt.Errorf("either tenor_code or fixed_offset_years is required")
	}
	return curve.NewFixedOffsetForwardCurve(in.Name, referenceDate, *in.FixedOffsetYears, in.DiscountCurve), nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]offsetInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []offsetInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input offsetInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []offsetInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(offsetOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
