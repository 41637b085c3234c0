package main

import (
	"flag"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/hepkit/ttreco/internal/assembly"
	"github.com/hepkit/ttreco/internal/binstats"
	"github.com/hepkit/ttreco/internal/config"
	"github.com/hepkit/ttreco/internal/kinematics"
	"github.com/hepkit/ttreco/internal/report"
	"github.com/hepkit/ttreco/internal/residuals"
	"github.com/hepkit/ttreco/internal/spincorr"
	"github.com/hepkit/ttreco/internal/utils/logger"
)

func main() {
	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to assemble dataset")
	}
	log.Info().Int("events", ds.Gen.Len()).Int("methods", len(ds.Methods)).Msg("dataset assembled")

	rep, err := analyze(ds, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}
	rep.Era = cfg.Era
	logger.Sugar().Infow("analysis complete", "era", cfg.Era, "events", rep.Events, "variables", len(rep.Variables))

	if _, err := report.Write(cfg.OutputDir, "reco_quality_"+cfg.Era, rep, cfg.CompressReports); err != nil {
		log.Fatal().Err(err).Msg("failed to write report")
	}
}

// loadDataset pulls samples from the remote store when one is configured
// and sample names were passed on the command line; otherwise it sweeps the
// local sample directory.
func loadDataset(cfg *config.AppConfig) (*assembly.Dataset, error) {
	if cfg.SampleBaseURL != "" && flag.NArg() > 0 {
		fetcher := assembly.NewFetcher(cfg.SampleBaseURL, cfg.ClientTimeout)
		return fetcher.FetchSamples(flag.Args())
	}

	paths, err := filepath.Glob(filepath.Join(cfg.SampleDir, "*.json"))
	if err != nil {
		return nil, err
	}
	zpaths, err := filepath.Glob(filepath.Join(cfg.SampleDir, "*.json.zst"))
	if err != nil {
		return nil, err
	}
	paths = append(paths, zpaths...)
	sort.Strings(paths)
	log.Info().Strs("paths", paths).Msg("loading local samples")
	return assembly.LoadSamples(paths)
}

func analyze(ds *assembly.Dataset, cfg *config.AppConfig) (*report.Report, error) {
	genObs, err := spincorr.Compute(ds.Gen.Tops, ds.Gen.Antitop, ds.Gen.Leptons, ds.Gen.Antilep)
	if err != nil {
		return nil, err
	}

	methodObs := make(map[string]spincorr.ObservableSet, len(ds.Methods))
	for name, b := range ds.Methods {
		obs, err := spincorr.Compute(b.Tops, b.Antitop, b.Leptons, b.Antilep)
		if err != nil {
			return nil, err
		}
		methodObs[name] = obs
	}

	rep := &report.Report{Events: ds.Gen.Len()}

	// Direct kinematic spectra.
	kinVars := map[string]func(assembly.EventBatch) []float64{
		"ttbar_mass": ttbarMasses,
		"ttbar_pt":   ttbarPts,
		"t_pt": func(b assembly.EventBatch) []float64 {
			return b.Tops.Pts()
		},
		"t_energy": func(b assembly.EventBatch) []float64 {
			return b.Tops.Energies()
		},
	}
	for variable, extract := range kinVars {
		gen := extract(ds.Gen)
		methods := make(map[string][]float64, len(ds.Methods))
		for name, b := range ds.Methods {
			methods[name] = extract(b)
		}
		vr, err := evaluateVariable(variable, methods, gen, ds.Gen.Weights, cfg.DefaultBins)
		if err != nil {
			return nil, err
		}
		rep.Variables = append(rep.Variables, vr)
	}

	// Spin-correlation observables.
	for _, variable := range spincorr.Names {
		methods := make(map[string][]float64, len(methodObs))
		for name, obs := range methodObs {
			methods[name] = obs[variable]
		}
		vr, err := evaluateVariable(variable, methods, genObs[variable], ds.Gen.Weights, cfg.DefaultBins)
		if err != nil {
			return nil, err
		}
		rep.Variables = append(rep.Variables, vr)
	}

	return rep, nil
}

func evaluateVariable(variable string, methods map[string][]float64, gen, weights []float64, defaultBins int) (report.VariableReport, error) {
	spec, ok := binstats.SpecFor(variable)
	if !ok {
		spec = binstats.Uniform(defaultBins)
	}
	quality, err := residuals.Evaluate(methods, gen, weights, spec)
	if err != nil {
		return report.VariableReport{}, err
	}
	return report.FromQuality(variable, quality), nil
}

func ttbarMasses(b assembly.EventBatch) []float64 {
	out := make([]float64, len(b.Tops))
	for i := range b.Tops {
		out[i] = b.Tops[i].Add(b.Antitop[i]).Mass()
	}
	return out
}

func ttbarPts(b assembly.EventBatch) []float64 {
	out := make([]float64, len(b.Tops))
	for i := range b.Tops {
		top := kinematics.FromPxPy(b.Tops[i].Px, b.Tops[i].Py)
		tbar := kinematics.FromPxPy(b.Antitop[i].Px, b.Antitop[i].Py)
		out[i] = top.Add(tbar).Pt()
	}
	return out
}
