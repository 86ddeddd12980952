package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/tripwindow/config"
	"github.com/kilianp07/tripwindow/core/model"
	"github.com/kilianp07/tripwindow/core/present"
	"github.com/kilianp07/tripwindow/core/prompt"
	"github.com/kilianp07/tripwindow/core/request"
	"github.com/kilianp07/tripwindow/core/rerun"
	"github.com/kilianp07/tripwindow/core/search"
	"github.com/kilianp07/tripwindow/infra/logger"
	"github.com/kilianp07/tripwindow/infra/metrics"
	_ "github.com/kilianp07/tripwindow/infra/present"
	"github.com/kilianp07/tripwindow/infra/table"
)

// Greeting opens every interactive session.
const Greeting = "Hello! I am a scheduling tool made to find a timeframe that fits all people specified in the following."

// Service runs search sessions: it owns the presenters, the metrics
// registry and the logger of one run.
type Service struct {
	cfg       *config.Config
	runID     string
	log       logger.Logger
	registry  *prometheus.Registry
	recorder  *metrics.PromRecorder
	presenter present.Multi
	out       io.Writer
}

// New creates a Service writing results to out.
func New(cfg *config.Config, out io.Writer) (*Service, error) {
	if err := logger.Setup(cfg.Logging.Options()); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	runID := uuid.NewString()
	logg := logger.WithRun(logger.New("service"), runID)

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewPromRecorderWithRegistry(reg)
	if err != nil {
		return nil, fmt.Errorf("prom recorder: %w", err)
	}
	ps, err := present.Build(cfg.Output.Presenters)
	if err != nil {
		return nil, fmt.Errorf("presenters: %w", err)
	}
	logg.Infof("session started with %d presenter(s)", len(ps))
	return &Service{
		cfg:       cfg,
		runID:     runID,
		log:       logg,
		registry:  reg,
		recorder:  rec,
		presenter: present.Multi(ps),
		out:       out,
	}, nil
}

// RunID identifies the session in logs and exported results.
func (s *Service) RunID() string { return s.runID }

// Registry exposes the metrics gathered by the session.
func (s *Service) Registry() *prometheus.Registry { return s.registry }

// Interactive runs the question dialogue on in: choose a file, collect the
// constraints, search and offer shorter windows while nothing is found.
// Input ending early stops the dialogue without error.
func (s *Service) Interactive(in io.Reader) error {
	p := prompt.NewPrompter(in, s.out)
	col := prompt.NewCollector(p, s.cfg.Search)

	p.Say(Greeting)
	t, source, err := col.ChooseFile(s.cfg.Data.Dir, s.cfg.Data.DefaultFile, table.Load)
	if err != nil {
		return s.aborted(err)
	}
	s.log.Infof("loaded %s: %d dates, %d persons", source, t.Len(), len(t.Persons()))
	p.Say("My search is based on %s. Let us begin!", source)

	cons, err := col.Collect(t)
	if err != nil {
		return s.aborted(err)
	}
	return s.search(t, cons, source, s.cfg.Search.Top, p)
}

// Request runs a scripted search. When shrink is set, empty results are
// retried with shorter windows without asking.
func (s *Service) Request(req request.Request, shrink bool) error {
	source := s.cfg.Data.DefaultPath()
	if req.Data != "" {
		source = s.cfg.Data.Resolve(req.Data)
	}
	t, err := table.Load(source)
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}
	cons, err := req.ToConstraints(t, s.cfg.Search)
	if err != nil {
		return fmt.Errorf("constraints: %w", err)
	}
	top := s.cfg.Search.Top
	if req.Top > 0 {
		top = req.Top
	}
	var conf rerun.Confirmer
	if shrink {
		conf = rerun.ConfirmFunc(func(string) (bool, error) { return true, nil })
	}
	return s.search(t, cons, source, top, conf)
}

func (s *Service) search(t *model.Table, cons model.Constraints, source string, top int, conf rerun.Confirmer) error {
	eng := search.NewEngine(t, top, s.recorder, logger.WithRun(logger.New("search"), s.runID))
	rep := present.Report{Constraints: cons, Length: cons.Length, Top: top, RunID: s.runID, Source: source}

	// shown is set once the current empty result has been presented.
	var shown bool
	var ctl *rerun.Controller
	if conf != nil {
		ctl = rerun.New(eng, rerun.ConfirmFunc(func(q string) (bool, error) {
			if err := s.presenter.Present(s.out, rep); err != nil {
				return false, err
			}
			shown = true
			return conf.Confirm(q)
		}))
	} else {
		ctl = rerun.New(eng, nil)
	}
	ctl.OnAttempt = func(l model.WindowLength) {
		shown = false
		rep.Length = l
		if err := s.presenter.Retrying(s.out, l); err != nil {
			s.log.Warnf("announce retry: %v", err)
		}
	}

	res, length, err := ctl.Run(cons)
	if err != nil && !errors.Is(err, prompt.ErrAborted) {
		return fmt.Errorf("re-run: %w", err)
	}
	rep.Result, rep.Length = res, length
	if res.Empty() {
		s.log.Infof("no window found down to %s", length)
	}
	if shown && res.Empty() {
		return nil
	}
	if err := s.presenter.Present(s.out, rep); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

func (s *Service) aborted(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		s.log.Infof("dialogue aborted")
		return nil
	}
	return err
}

// Close writes the metrics textfile when configured and releases the log
// file.
func (s *Service) Close() error {
	var errs []error
	if path := s.cfg.Metrics.Textfile; path != "" {
		if err := metrics.WriteTextfile(path, s.registry); err != nil {
			errs = append(errs, fmt.Errorf("metrics textfile: %w", err))
		}
	}
	if err := logger.Close(); err != nil {
		errs = append(errs, fmt.Errorf("log file: %w", err))
	}
	return errors.Join(errs...)
}
