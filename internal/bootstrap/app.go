package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"caroai-backend/internal/advice"
	"caroai-backend/internal/courses"
	"caroai-backend/internal/gaps"
	"caroai-backend/internal/internships"
	"caroai-backend/internal/llm"
	"caroai-backend/internal/llm/gemini"
	"caroai-backend/internal/roadmap"
	"caroai-backend/internal/sessions"
	"caroai-backend/internal/shared/config"
	"caroai-backend/internal/shared/server"
	"caroai-backend/internal/shared/storage/db"
	"caroai-backend/internal/shared/storage/object"
	localstore "caroai-backend/internal/shared/storage/object/local"
	s3store "caroai-backend/internal/shared/storage/object/s3"
	"caroai-backend/internal/skills"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	LLM    llm.Client

	SessionsRepo sessions.Repo
	CoursesRepo  courses.Repo
	PlansRepo    advice.PlanRepo

	SessionsService *sessions.Service
	SkillsService   *skills.Service
	RoadmapService  *roadmap.Service
	GapsService     *gaps.Service
	CoursesService  *courses.Service
	AdviceService   *advice.Service

	SessionHandler    *sessions.Handler
	AdviceHandler     *advice.Handler
	InternshipHandler *internships.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		LLM:    client,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		SessionHandler:    app.SessionHandler,
		AdviceHandler:     app.AdviceHandler,
		InternshipHandler: app.InternshipHandler,
	})

	return app, nil
}

// buildDB connects to Postgres for the course catalog. The catalog is the
// only persisted data; sessions and plans live in memory.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; using built-in course catalog")
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using built-in course catalog: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildLLM constructs the provider client and wraps it with retry and
// circuit-breaker behavior. Provider "mock" skips the wrapper so tests
// observe exact call counts.
func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.LLMProvider)) {
	case "mock":
		return &llm.MockClient{}, nil
	case "", "gemini":
		timeout := time.Duration(cfg.LLMTimeoutSeconds) * time.Second
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, timeout)
		if err != nil {
			return nil, err
		}
		return llm.NewResilientClient(client, llm.ResilienceConfig{}), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

func buildServices(app *App) {
	sessionsRepo := sessions.NewMemoryRepo()
	plansRepo := advice.NewMemoryPlanRepo()

	var coursesRepo courses.Repo
	if app.DB != nil {
		coursesRepo = &courses.PGRepo{DB: app.DB}
	} else {
		coursesRepo = courses.NewSeededMemoryRepo()
	}

	sessionsSvc := sessions.NewService(sessionsRepo)
	skillsSvc := skills.NewService(app.LLM)
	roadmapSvc := roadmap.NewService(app.LLM)
	gapsSvc := gaps.NewService(app.LLM)
	coursesSvc := courses.NewService(coursesRepo, app.LLM)
	adviceSvc := advice.NewService(sessionsSvc, roadmapSvc, gapsSvc, coursesSvc, app.Store, plansRepo)

	app.SessionsRepo = sessionsRepo
	app.CoursesRepo = coursesRepo
	app.PlansRepo = plansRepo
	app.SessionsService = sessionsSvc
	app.SkillsService = skillsSvc
	app.RoadmapService = roadmapSvc
	app.GapsService = gapsSvc
	app.CoursesService = coursesSvc
	app.AdviceService = adviceSvc
	app.SessionHandler = sessions.NewHandler(sessionsSvc, skillsSvc, app.Store)
	app.AdviceHandler = advice.NewHandler(adviceSvc)
	app.InternshipHandler = internships.NewHandler(sessionsSvc)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
