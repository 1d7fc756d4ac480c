// internal/platform/di/container.go
package di

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	fbdb "firebase.google.com/go/v4/db"
	_ "github.com/lib/pq"
	"google.golang.org/api/option"

	outdb "agendalog/internal/adapters/out/db"
	outfs "agendalog/internal/adapters/out/firestore"
	httpout "agendalog/internal/adapters/out/http"
	"agendalog/internal/adapters/out/mail"
	"agendalog/internal/adapters/out/rtdb"
	usecase "agendalog/internal/application/usecase"
	"agendalog/internal/domain/catalogue"
	"agendalog/internal/domain/notify"
	scheduledom "agendalog/internal/domain/schedule"
	appcfg "agendalog/internal/infra/config"
)

// Container owns external clients and the wired usecases.
// Pure DI: build deps only, no routing decisions.
type Container struct {
	Config *appcfg.Config

	// Clients (owned; Close-managed)
	Firestore     *firestore.Client
	FirebaseApp   *firebase.App
	FirebaseAuth  *fbauth.Client
	RTDB          *fbdb.Client
	SecretManager *secretmanager.Client
	SQL           *sql.DB

	Catalogue *catalogue.Catalogue
	Notifier  notify.Notifier

	FormUC     *usecase.FormUsecase
	ScheduleUC *usecase.ScheduleUsecase
	ClientUC   *usecase.ClientUsecase
	LookupUC   *usecase.LookupUsecase
}

// NewContainer initializes clients and usecases.
// Firestore is strict (the draft store cannot be absent). Firebase Auth,
// Secret Manager and the notifier are best-effort: warn and continue.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := appcfg.Load()

	projectID := strings.TrimSpace(cfg.GCPProjectID)
	if projectID == "" {
		return nil, errors.New("di: project id is empty (set GCP_PROJECT_ID)")
	}

	var clientOpts []option.ClientOption
	if cred := strings.TrimSpace(cfg.CredentialsFile); cred != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(cred))
		log.Printf("[di] using credentials file for GCP clients")
	} else {
		log.Printf("[di] using application default credentials")
	}

	cont := &Container{Config: cfg}

	// Firestore (strict)
	fs, err := firestore.NewClient(ctx, projectID, clientOpts...)
	if err != nil {
		return nil, err
	}
	cont.Firestore = fs

	// Firebase app: needed for auth verification and the Realtime Database.
	fbCfg := &firebase.Config{
		ProjectID:   strings.TrimSpace(cfg.FirebaseProjectID),
		DatabaseURL: strings.TrimSpace(cfg.RTDBURL),
	}
	app, err := firebase.NewApp(ctx, fbCfg, clientOpts...)
	if err != nil {
		log.Printf("[di] WARN: firebase.NewApp failed: %v", err)
	} else {
		cont.FirebaseApp = app
		if ac, err := app.Auth(ctx); err != nil {
			log.Printf("[di] WARN: firebase auth unavailable: %v", err)
		} else {
			cont.FirebaseAuth = ac
		}
	}

	// Secret Manager (best-effort; only needed to resolve the SendGrid key)
	if sm, err := secretmanager.NewClient(ctx, clientOpts...); err != nil {
		log.Printf("[di] WARN: secretmanager unavailable: %v", err)
	} else {
		cont.SecretManager = sm
	}

	// Schedule repository: RTDB by default, Postgres when configured.
	var schedules scheduledom.Repository
	switch strings.TrimSpace(cfg.ScheduleBackend) {
	case "postgres":
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			cont.Close()
			return nil, errors.New("di: SCHEDULE_BACKEND=postgres requires POSTGRES_DSN")
		}
		sqlDB, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			cont.Close()
			return nil, err
		}
		cont.SQL = sqlDB
		schedules = outdb.NewScheduleRepositoryPG(sqlDB)
		log.Printf("[di] schedule backend = postgres")
	default:
		if cont.FirebaseApp == nil {
			cont.Close()
			return nil, errors.New("di: rtdb backend requires a firebase app (check FIREBASE_DATABASE_URL)")
		}
		dbc, err := cont.FirebaseApp.Database(ctx)
		if err != nil {
			cont.Close()
			return nil, err
		}
		cont.RTDB = dbc
		schedules = rtdb.NewScheduleRepositoryRTDB(dbc)
		log.Printf("[di] schedule backend = rtdb")
	}

	// Notifier: SendGrid when a key is configured (directly or via Secret
	// Manager), log-only otherwise.
	cont.Notifier = cont.buildNotifier(ctx, projectID)

	cont.Catalogue = catalogue.Default()

	forms := outfs.NewFormRepositoryFS(fs)
	clients := outfs.NewClientRepositoryFS(fs)
	cnpj := httpout.NewCNPJClient(cfg.CNPJBaseURL)

	cont.FormUC = usecase.NewFormUsecase(forms, cont.Catalogue)
	cont.ScheduleUC = usecase.NewScheduleUsecase(forms, schedules, cont.Notifier)
	cont.ClientUC = usecase.NewClientUsecase(clients)
	cont.LookupUC = usecase.NewLookupUsecase(cnpj, cont.Notifier)

	return cont, nil
}

func (c *Container) buildNotifier(ctx context.Context, projectID string) notify.Notifier {
	key := strings.TrimSpace(c.Config.SendGridAPIKey)
	if key == "" && strings.TrimSpace(c.Config.SendGridSecretName) != "" && c.SecretManager != nil {
		name := "projects/" + projectID + "/secrets/" + strings.TrimSpace(c.Config.SendGridSecretName) + "/versions/latest"
		resp, err := c.SecretManager.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
		if err != nil || resp == nil || resp.Payload == nil {
			log.Printf("[di] WARN: could not resolve sendgrid key from secret manager: %v", err)
		} else {
			key = strings.TrimSpace(string(resp.Payload.Data))
		}
	}

	if key != "" && c.Config.NotifyFrom != "" && c.Config.NotifyTo != "" {
		log.Printf("[di] notifier = sendgrid")
		return mail.NewSendGridNotifier(key, c.Config.NotifyFrom, c.Config.NotifyTo)
	}
	log.Printf("[di] notifier = log (sendgrid not configured)")
	return mail.NewLogNotifier()
}

// Close releases owned clients. Safe to call on a partially built container.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Firestore != nil {
		_ = c.Firestore.Close()
	}
	if c.SecretManager != nil {
		_ = c.SecretManager.Close()
	}
	if c.SQL != nil {
		_ = c.SQL.Close()
	}
}
