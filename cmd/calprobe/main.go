// Command calprobe prints tenor-adjusted dates around a base date, using
// either the bundled holiday data or the reference data store configured in
// curvelib.yaml. Useful for checking what a curve's payment schedule will
// see before wiring it into pricing.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/meenmo/curvelib/calendar"
	"github.com/meenmo/curvelib/config"
	"github.com/meenmo/curvelib/logging"
	"github.com/meenmo/curvelib/marketdata"
)

type probeRow struct {
	Tenor         string `json:"tenor"`
	Unadjusted    string `json:"unadjusted"`
	Adjusted      string `json:"adjusted"`
	IsBusinessDay bool   `json:"was_business_day"`
}

func main() {
	configPath := flag.String("config", "", "Config file path (defaults to curvelib.yaml lookup)")
	calID := flag.String("calendar", "", "Calendar ID (overrides config)")
	baseDate := flag.String("date", "", "Base date YYYY-MM-DD (defaults to today)")
	roll := flag.String("roll", "", "Roll convention (overrides config)")
	tenors := flag.String("tenors", "1W,1M,3M,6M,1Y", "Comma-separated tenor codes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calprobe: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Config{
		Level:    cfg.Log.Level,
		Console:  cfg.Log.Console,
		File:     cfg.Log.File,
		FilePath: cfg.Log.FilePath,
	})

	id := calendar.ID(cfg.Market.Calendar)
	if *calID != "" {
		id = calendar.ID(*calID)
	}
	rollName := cfg.Market.RollConvention
	if *roll != "" {
		rollName = *roll
	}
	rollConv, err := calendar.ParseRollConvention(rollName)
	if err != nil {
		log.Error().Err(err).Msg("invalid roll convention")
		os.Exit(1)
	}

	base := time.Now().UTC().Truncate(24 * time.Hour)
	if *baseDate != "" {
		base, err = time.Parse("2006-01-02", *baseDate)
		if err != nil {
			log.Error().Err(err).Str("date", *baseDate).Msg("invalid base date")
			os.Exit(1)
		}
	}

	cal, err := loadCalendar(context.Background(), cfg, id, log)
	if err != nil {
		log.Error().Err(err).Str("calendar", string(id)).Msg("load calendar")
		os.Exit(1)
	}

	rows := make([]probeRow, 0)
	for _, code := range strings.Split(*tenors, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		tenor, err := calendar.ParseTenor(code)
		if err != nil {
			log.Error().Err(err).Msg("invalid tenor")
			os.Exit(1)
		}
		unadjusted := tenor.Shift(base)
		adjusted := cal.Roll(unadjusted, rollConv)
		rows = append(rows, probeRow{
			Tenor:         tenor.String(),
			Unadjusted:    unadjusted.Format("2006-01-02"),
			Adjusted:      adjusted.Format("2006-01-02"),
			IsBusinessDay: cal.IsBusinessDay(unadjusted),
		})
	}

	b, _ := json.MarshalIndent(struct {
		Calendar string     `json:"calendar"`
		BaseDate string     `json:"base_date"`
		Roll     string     `json:"roll_convention"`
		Rows     []probeRow `json:"rows"`
	}{string(id), base.Format("2006-01-02"), string(rollConv), rows}, "", "  ")
	fmt.Println(string(b))
}

// loadCalendar prefers the configured store; with no driver configured it
// falls back to the bundled holiday data.
func loadCalendar(ctx context.Context, cfg *config.Config, id calendar.ID, log zerolog.Logger) (*calendar.Calendar, error) {
	if cfg.Store.Driver == "" {
		log.Debug().Str("calendar", string(id)).Msg("using bundled holiday data")
		return calendar.Bundled(id), nil
	}

	store, err := marketdata.Open(cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	log.Debug().
		Str("driver", cfg.Store.Driver).
		Str("calendar", string(id)).
		Msg("loading holidays from store")
	return marketdata.LoadCalendar(ctx, store, id)
}
