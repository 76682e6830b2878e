package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/patientkeeper/internal/client/client"
	"github.com/dmitrijs2005/patientkeeper/internal/client/config"
	"github.com/dmitrijs2005/patientkeeper/internal/client/models"
	"github.com/dmitrijs2005/patientkeeper/internal/client/notify"
	"github.com/dmitrijs2005/patientkeeper/internal/client/services"
	"github.com/dmitrijs2005/patientkeeper/internal/client/store"
	"github.com/dmitrijs2005/patientkeeper/internal/logging"
)

// patientStore is the read and load side of store.Store used by the views.
type patientStore interface {
	Initialize(ctx context.Context) error
	Reload(ctx context.Context) error
	State() store.State
	Get(id string) (models.Patient, bool)
}

// syncWriter serialises writes from the REPL and the notification listener.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

type App struct {
	config         *config.Config
	logger         logging.Logger
	store          patientStore
	queue          *notify.Queue
	patientService services.PatientService
	reader         *LineReader
	out            io.Writer
	view           *view

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewApp builds the application handle: remote source, notification queue,
// store and form service, all bound to in and out.
func NewApp(c *config.Config, logger logging.Logger, in io.Reader, out io.Writer) *App {
	queue := notify.NewQueue(c.NotificationTTL)
	source := client.NewHTTPClient(c.RemoteURL, c.RequestTimeout, nil, logger)
	st := store.New(source, queue, logger)
	ps := services.NewPatientService(st, c.SubmitDelay, c.StrictWebsite, logger)

	a := &App{
		config:         c,
		logger:         logger,
		store:          st,
		queue:          queue,
		patientService: ps,
		reader:         NewLineReader(in),
		out:            &syncWriter{w: out},
		view:           newView(out, terminalWidth(out), time.Local),
	}
	queue.OnChange(a.onNotification)
	return a
}

// onNotification prints a notification when it appears. Dismissal needs no
// output in a scrolling terminal.
func (a *App) onNotification(n models.Notification, visible bool) {
	if !visible {
		return
	}
	fmt.Fprintln(a.out, a.view.notification(n))
}

// Run starts the initial load in the background and blocks in the REPL
// until the user exits or ctx is done. Close is called before returning.
func (a *App) Run(ctx context.Context) {
	ctx, a.cancel = context.WithCancel(ctx)
	defer a.Close()

	fmt.Fprintln(a.out, a.view.title.Render("PatientKeeper")+" (type 'help' for commands)")

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.load(ctx)
	}()

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// load runs the initial fetch and reports its outcome.
func (a *App) load(ctx context.Context) {
	if err := a.store.Initialize(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintln(a.out, a.view.loadError(a.store.State().Error))
		return
	}
	fmt.Fprintf(a.out, "Loaded %d patients.\n", len(a.store.State().Patients))
}

// Close cancels the background load, waits for it and stops the
// notification timer. It is safe to call more than once.
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
	a.queue.Close()
}

func (a *App) getStatus() string {
	st := a.store.State()
	switch {
	case st.Loading:
		return "loading"
	case st.Error != "":
		return "error"
	default:
		return fmt.Sprintf("%d patients", len(st.Patients))
	}
}

func (a *App) loadFailed() bool {
	return a.store.State().Error != ""
}
