// ABOUTME: Application controller owning the store, codec, views, and form session
// ABOUTME: Routes intents and applies every mutation as store, then save, then render

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harper/workouts/internal/collection"
	"github.com/harper/workouts/internal/models"
	"github.com/harper/workouts/internal/observability"
	"github.com/harper/workouts/internal/session"
	"github.com/harper/workouts/internal/storage"
	"github.com/harper/workouts/internal/view"
)

// ErrUnknownIntent is returned by Dispatch for intents it does not route.
var ErrUnknownIntent = errors.New("unknown intent")

// Config wires an App to its collaborators.
type Config struct {
	Codec   *storage.Codec
	Map     view.MapWidget
	List    view.ListRenderer
	Locator Locator
	Logger  *log.Logger
	Metrics *observability.Metrics
	Zoom    int
	IDs     models.IDGenerator
	Clock   func() time.Time
}

// App is the single owner of the running session's state.
// It is not safe for concurrent use.
type App struct {
	store   *collection.Store
	codec   *storage.Codec
	sync    *view.Synchronizer
	session *session.Session
	confirm view.Confirmation
	mapw    view.MapWidget
	locator Locator
	logger  *log.Logger
	metrics *observability.Metrics
	sort    collection.Criterion
	ids     models.IDGenerator
	clock   func() time.Time
}

// New creates an App. Codec and List are required.
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NewMetrics()
	}
	locator := cfg.Locator
	if locator == nil {
		locator = StaticLocator{}
	}
	ids := cfg.IDs
	if ids == nil {
		ids = models.UUIDIDs
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &App{
		store:   collection.New(),
		codec:   cfg.Codec,
		sync:    view.NewSynchronizer(cfg.Map, cfg.List, cfg.Zoom),
		session: session.New(),
		mapw:    cfg.Map,
		locator: locator,
		logger:  logger,
		metrics: metrics,
		sort:    collection.DateAdded,
		ids:     ids,
		clock:   clock,
	}
}

// Start loads the saved workouts, renders the list, and shows the map
// around the current location. A failed lookup leaves the app running
// without a map.
func (a *App) Start(ctx context.Context) error {
	res, err := a.codec.Load()
	if err != nil {
		a.logger.Error("could not load workouts", "slot", a.codec.Slot().Name(), "err", err)
		a.metrics.RecordPersistenceFailure()
	}
	for _, w := range res.Warnings {
		a.logger.Warn("skipped saved workout", "err", w)
	}
	for _, err := range a.store.Replace(res.Workouts) {
		a.logger.Warn("skipped saved workout", "err", err)
	}
	a.metrics.SetRecords(a.store.Len())
	a.logger.Debug("loaded workouts", "count", a.store.Len())

	a.sync.RenderAll(a.store.SortedView(a.sort))

	coord, err := a.locator.Locate(ctx)
	if err != nil {
		a.logger.Warn("could not get user coordinates", "err", err)
		return nil
	}
	a.sync.ShowCurrentLocation(coord)
	a.sync.RenderAllMarkers(a.store.All())
	if a.mapw != nil {
		a.mapw.OnClick(func(c models.Coordinate) {
			if err := a.Dispatch(view.CreateIntent{Coord: c}); err != nil {
				a.logger.Warn("map click ignored", "err", err)
			}
		})
	}
	return nil
}

// Dispatch routes a decoded intent.
func (a *App) Dispatch(intent view.Intent) error {
	switch in := intent.(type) {
	case view.CreateIntent:
		return a.session.BeginCreate(in.Coord)
	case view.EditIntent:
		_, err := a.Edit(in.ID)
		return err
	case view.DeleteIntent:
		if _, err := a.find("delete", in.ID); err != nil {
			return err
		}
		return a.confirm.Request(in)
	case view.DeleteAllIntent:
		return a.confirm.Request(in)
	case view.ConfirmIntent:
		return a.Confirm(in.Accepted)
	case view.ViewIntent:
		_, err := a.View(in.ID)
		return err
	case view.ViewAllIntent:
		a.ViewAll()
		return nil
	case view.SortIntent:
		a.Sort(in.Criterion)
		return nil
	case view.CancelIntent:
		a.session.Cancel()
		return nil
	}
	return fmt.Errorf("%w: %T", ErrUnknownIntent, intent)
}

// Edit opens the form for the workout with id and returns the prefilled values.
func (a *App) Edit(id string) (session.RawForm, error) {
	w, err := a.find("edit", id)
	if err != nil {
		return session.RawForm{}, err
	}
	return a.session.BeginEdit(w), nil
}

// SubmitForm validates the open form and applies it. Validation errors are
// returned without changing any state.
func (a *App) SubmitForm(raw session.RawForm) (*models.Workout, error) {
	sub, err := a.session.Submit(raw)
	if err != nil {
		a.record("submit", err)
		return nil, err
	}

	switch s := sub.(type) {
	case session.CreateSubmission:
		return a.create(s)
	case session.UpdateSubmission:
		return a.update(s)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownIntent, sub)
}

func (a *App) create(s session.CreateSubmission) (*models.Workout, error) {
	w, err := models.NewWorkout(s.Kind, s.Coord, s.Fields,
		models.WithClock(a.clock), models.WithIDGenerator(a.ids))
	if err != nil {
		a.record("create", err)
		return nil, err
	}
	if err := a.store.Add(w); err != nil {
		a.logger.Error("could not add workout", "id", w.ID, "err", err)
		a.record("create", err)
		return nil, err
	}
	a.save("create")
	a.sync.RenderCreated(w)
	a.session.Complete()

	a.logger.Info("created workout", "id", w.ID, "type", w.Kind)
	a.record("create", nil)
	return w, nil
}

func (a *App) update(s session.UpdateSubmission) (*models.Workout, error) {
	w, err := a.store.Update(s.ID, s.Patch)
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			a.logger.Warn("edited workout is gone", "id", s.ID)
		}
		a.record("update", err)
		return nil, err
	}
	a.save("update")
	a.sync.RenderAll(a.store.SortedView(a.sort))
	a.session.Complete()

	a.logger.Info("updated workout", "id", w.ID)
	a.record("update", nil)
	return w, nil
}

// Confirm answers the pending confirmation. Declining does nothing.
func (a *App) Confirm(accepted bool) error {
	action, err := a.confirm.Resolve(accepted)
	if err != nil {
		return err
	}

	switch in := action.(type) {
	case nil:
		a.metrics.RecordOperation("delete", observability.OutcomeDeclined)
		return nil
	case view.DeleteIntent:
		return a.remove(in.ID)
	case view.DeleteAllIntent:
		a.removeAll()
		return nil
	}
	return fmt.Errorf("%w: %T", ErrUnknownIntent, action)
}

func (a *App) remove(id string) error {
	w, err := a.store.RemoveByID(id)
	if err != nil {
		a.logger.Warn("workout to delete is gone", "id", id)
		a.record("delete", err)
		return err
	}
	a.save("delete")
	if t := a.session.Target(); t != nil && t.ID == w.ID {
		a.session.Cancel()
	}
	a.reset()

	a.logger.Info("deleted workout", "id", w.ID)
	a.record("delete", nil)
	return nil
}

func (a *App) removeAll() {
	n := a.store.RemoveAll()
	if err := a.codec.Clear(); err != nil {
		a.logger.Error("could not clear saved workouts", "err", err)
		a.metrics.RecordPersistenceFailure()
	}
	if a.session.State() == session.Editing {
		a.session.Cancel()
	}
	a.reset()

	a.logger.Info("deleted all workouts", "count", n)
	a.record("delete_all", nil)
}

func (a *App) reset() {
	a.sync.Reset(slices.Collect(a.store.SortedView(a.sort)))
	a.metrics.SetRecords(a.store.Len())
}

// View focuses the map on the workout and counts the view.
func (a *App) View(id string) (*models.Workout, error) {
	w, err := a.find("view", id)
	if err != nil {
		return nil, err
	}
	a.sync.Focus(w)
	models.TouchView(w)
	a.save("view")

	a.logger.Debug("viewed workout", "id", w.ID, "views", w.ViewCount)
	a.record("view", nil)
	return w, nil
}

// ViewAll fits the map to every workout.
func (a *App) ViewAll() {
	a.sync.FitToAll(a.store.All())
	a.record("view_all", nil)
}

// Sort re-renders the list in the order of c and remembers it.
func (a *App) Sort(c collection.Criterion) {
	a.sort = c
	a.sync.RenderAll(a.store.SortedView(c))
	a.record("sort", nil)
}

// Import adds restored workouts to the collection. Workouts whose id is
// already present are skipped and reported; the rest are saved once.
func (a *App) Import(ws []*models.Workout) (int, []error) {
	var skipped []error
	added := 0
	for _, w := range ws {
		models.Recompute(w)
		if err := a.store.Add(w); err != nil {
			a.logger.Warn("skipped imported workout", "id", w.ID, "err", err)
			skipped = append(skipped, err)
			continue
		}
		added++
	}
	if added > 0 {
		a.save("import")
		a.reset()
	}

	a.logger.Info("imported workouts", "added", added, "skipped", len(skipped))
	a.record("import", nil)
	return added, skipped
}

// Workouts returns the workouts in the current sort order.
func (a *App) Workouts() []*models.Workout {
	return slices.Collect(a.store.SortedView(a.sort))
}

// Find returns the workout with id.
func (a *App) Find(id string) (*models.Workout, error) {
	return a.store.FindByID(id)
}

// Session exposes the form session state.
func (a *App) Session() *session.Session {
	return a.session
}

// Pending returns the prompt of the open confirmation, if any.
func (a *App) Pending() (string, bool) {
	if _, ok := a.confirm.Pending(); !ok {
		return "", false
	}
	return a.confirm.Prompt(), true
}

func (a *App) find(op, id string) (*models.Workout, error) {
	w, err := a.store.FindByID(id)
	if err != nil {
		a.logger.Warn("workout not found", "op", op, "id", id)
		a.record(op, err)
		return nil, err
	}
	return w, nil
}

// save writes the snapshot. Failures are logged and counted; the in-memory
// collection stays authoritative.
func (a *App) save(op string) {
	a.metrics.SetRecords(a.store.Len())
	if err := a.codec.Save(a.store.All()); err != nil {
		a.logger.Error("could not save workouts", "op", op, "err", err)
		a.metrics.RecordPersistenceFailure()
	}
}

func (a *App) record(op string, err error) {
	a.metrics.RecordOperation(op, outcome(err))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeOK
	case errors.Is(err, models.ErrValidation):
		return observability.OutcomeInvalid
	case errors.Is(err, collection.ErrNotFound):
		return observability.OutcomeNotFound
	case errors.Is(err, collection.ErrDuplicateID):
		return observability.OutcomeDuplicate
	}
	return observability.OutcomeError
}
