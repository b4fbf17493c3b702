// Package domain turns an NWS coastal waters forecast into a run/cancel
// estimate for the Hyannis–Nantucket high-speed ferry.
//
// # Data Source
//
// The forecast is the NWS Boston/Norton (KBOX) Coastal Waters Forecast,
// product FZUS51, as mirrored by NDBC at
// https://www.ndbc.noaa.gov/data/Forecasts/FZUS51.KBOX.html. The page wraps
// the plain-text bulletin in a little HTML, so [NormalizeText] strips tags
// before anything else looks at it.
//
// # Bulletin Conventions
//
// A bulletin holds one block per marine zone. Each block starts with the
// zone name on its own line and runs until the next zone heading:
//
//	ANZ232-181445-
//	Nantucket Sound
//	434 AM EDT Sun Oct 18 2026
//
//	TODAY
//	SW winds 10 to 15 kt. Seas 2 to 3 ft.
//	Wave Detail: SW 2 ft at 5 seconds.
//	TONIGHT
//	...
//
// Zone headings for the sound waters all end in "Sound", which is what
// [DefaultBoundary] keys on. Period labels are short upper-case lines
// ("TODAY", "TONIGHT", "MON", "MON NIGHT"). Issuance timestamps and
// WARNING/WATCH headlines are administrative and skipped.
//
// Numbers in period prose:
//
//	Wind:   "25 to 35 kt" (range, worst case taken) or "10 kt"
//	Gust:   "gusts up to 40 kt"
//	Seas:   "Seas 5 to 7 ft" (range, midpoint taken) or "Seas 2 ft"
//	Period: "W 6 ft at 6 seconds" (dominant wave period)
//
// Anything the prose omits falls back to [MeasurementDefaults]; a missing
// number is never an error.
//
// # Scoring
//
// [ScoreRisk] starts from a 90% chance of running and subtracts penalties for
// steep seas, strong wind and gusts, short wave periods and departures in the
// rough morning/evening windows. The result is clamped to 1–99% and banded:
//
//	≥ 0.90 LOW | ≥ 0.70 MODERATE | ≥ 0.40 HIGH | otherwise VERY HIGH
//
// Every threshold and penalty lives in [ModelConfig]. The model is a fixed
// heuristic and is not calibrated against sailing records.
package domain
