package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/wizard"
	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/pkg/i18n"

	"golang.org/x/text/language"
)

type action int

const (
	actionNext action = iota
	actionBack
	actionSubmit
	actionExport
	actionExit
)

var actionKeys = map[action]string{
	actionNext:   "Next",
	actionBack:   "Back",
	actionSubmit: "Submit",
	actionExport: "Download CSV",
	actionExit:   "Exit",
}

var stepTitles = map[wizard.Step]string{
	wizard.Contact:  "Contact",
	wizard.Delivery: "Delivery address",
	wizard.Pickup:   "Pickup address",
	wizard.Summary:  "Summary",
}

var fieldLabels = map[form.Field]string{
	form.Name:           "Full name",
	form.Email:          "Email",
	form.Phone:          "Mobile phone",
	form.DeliveryStreet: "Street and number",
	form.DeliveryColony: "Colony",
	form.DeliveryState:  "State",
	form.DeliveryPostal: "Postal code",
	form.PickupStreet:   "Street and number (pickup)",
	form.PickupColony:   "Colony",
	form.PickupState:    "State",
	form.PickupPostal:   "Postal code",
}

// Runner walks one wizard session through a PromptDriver.
type Runner struct {
	driver     PromptDriver
	dispatcher wizard.Dispatcher
	locale     language.Tag
	outDir     string
	logger     *slog.Logger
}

// NewRunner creates a runner. The CSV export is written to outDir.
func NewRunner(
	driver PromptDriver,
	dispatcher wizard.Dispatcher,
	locale language.Tag,
	outDir string,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		driver:     driver,
		dispatcher: dispatcher,
		locale:     locale,
		outDir:     outDir,
		logger:     logger.With("component", "cli"),
	}
}

// Run prompts until the user exits and returns the final form.
func (r *Runner) Run(ctx context.Context) (form.State, error) {
	w, err := wizard.NewWizard(kernel.NewUUID())
	if err != nil {
		return form.State{}, err
	}

	for {
		step := w.Step()
		if err = r.info(ctx, i18n.Translatef(r.locale, "Step %d of %d: %s (%d%%)",
			int(step)+1, int(wizard.Summary)+1, r.t(stepTitles[step]), step.Progress())); err != nil {
			return w.Form(), err
		}

		if step.IsTerminal() {
			err = r.printSummary(ctx, w.Form())
		} else {
			err = r.askFields(ctx, w)
		}
		if err != nil {
			return w.Form(), err
		}

		next, err := r.chooseAction(ctx, step)
		if err != nil {
			return w.Form(), err
		}

		switch next {
		case actionNext:
			var advanced bool
			advanced, err = w.Advance()
			if err == nil && !advanced {
				err = r.printErrors(ctx, w.Errors())
			}
		case actionBack:
			w.Retreat()
		case actionSubmit:
			var submitted bool
			submitted, err = w.Submit(ctx, r.dispatcher)
			if err == nil && !submitted {
				err = r.printErrors(ctx, w.Errors())
			}
		case actionExport:
			err = r.export(ctx, w.Form())
		case actionExit:
			return w.Form(), nil
		}
		if err != nil {
			return w.Form(), err
		}
	}
}

func (r *Runner) askFields(ctx context.Context, w *wizard.Wizard) error {
	violations := w.Errors()

	for _, f := range w.Step().Fields() {
		help := ""
		if v, ok := violations[f]; ok {
			help = r.t(v.String())
		}

		var (
			value string
			err   error
		)
		if f == form.DeliveryState || f == form.PickupState {
			value, err = r.askRegion(ctx, f, w.Form().Get(f), help)
		} else {
			value, err = r.driver.Input(ctx, InputConfig{
				Message: r.t(fieldLabels[f]),
				Default: w.Form().Get(f),
				Help:    help,
			})
		}
		if err != nil {
			return err
		}

		if err = w.SetField(f, value); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) askRegion(ctx context.Context, f form.Field, current, help string) (string, error) {
	regionOptions := kernel.RegionOptions()
	labels := make([]string, len(regionOptions))
	defaultIndex := 0
	for i, opt := range regionOptions {
		labels[i] = opt.Label
		if opt.Code == "" {
			labels[i] = r.t("Select a state")
		}
		if string(opt.Code) == current {
			defaultIndex = i
		}
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.t(fieldLabels[f]),
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         help,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(regionOptions) {
		return "", nil
	}
	return string(regionOptions[idx].Code), nil
}

func (r *Runner) chooseAction(ctx context.Context, step wizard.Step) (action, error) {
	var actions []action
	switch step {
	case wizard.Contact:
		actions = []action{actionNext, actionExport}
	case wizard.Delivery:
		actions = []action{actionNext, actionBack, actionExport}
	case wizard.Pickup:
		actions = []action{actionSubmit, actionBack, actionExport}
	default:
		actions = []action{actionExport, actionBack, actionExit}
	}

	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = r.t(actionKeys[a])
	}

	idx, err := r.driver.Select(ctx, SelectConfig{Message: r.t("What next?"), Options: labels})
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(actions) {
		return 0, fmt.Errorf("cli: unknown choice %d", idx)
	}
	return actions[idx], nil
}

func (r *Runner) printErrors(ctx context.Context, violations wizard.ErrorMap) error {
	for _, f := range form.AllFields() {
		v, ok := violations[f]
		if !ok {
			continue
		}
		if err := r.info(ctx, fmt.Sprintf("  %s: %s", r.t(fieldLabels[f]), r.t(v.String()))); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) printSummary(ctx context.Context, state form.State) error {
	body, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err = r.info(ctx, string(body)); err != nil {
		return err
	}
	if services.ShowNotice(state) {
		return r.info(ctx, r.t(services.NoticeText))
	}
	return nil
}

func (r *Runner) export(ctx context.Context, state form.State) error {
	path := filepath.Join(r.outDir, services.ExportFileName)
	if err := os.WriteFile(path, services.EncodeCSV(state), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	r.logger.DebugContext(ctx, "Form exported", "path", path)
	return r.info(ctx, i18n.Translatef(r.locale, "Saved %s", path))
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, msg)
}

func (r *Runner) t(key string) string {
	return i18n.Translate(r.locale, key)
}
