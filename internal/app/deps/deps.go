package deps

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/config"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	dl "github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	drl "github.com/ezabolo/SMS-reminder-app/internal/core/domain/rate_limiter"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	dsms "github.com/ezabolo/SMS-reminder-app/internal/core/domain/sms"
	duow "github.com/ezabolo/SMS-reminder-app/internal/core/domain/unit_of_work"
	dbadmin "github.com/ezabolo/SMS-reminder-app/internal/db/admin"
	dbpatient "github.com/ezabolo/SMS-reminder-app/internal/db/patient"
	dbreminder "github.com/ezabolo/SMS-reminder-app/internal/db/reminder"
	uow "github.com/ezabolo/SMS-reminder-app/internal/db/unit_of_work"
	"github.com/ezabolo/SMS-reminder-app/internal/implementations/logging"
	passwordhasher "github.com/ezabolo/SMS-reminder-app/internal/implementations/password_hasher"
	ratelimiter "github.com/ezabolo/SMS-reminder-app/internal/implementations/rate_limiter"
	"github.com/ezabolo/SMS-reminder-app/internal/implementations/session"
	"github.com/ezabolo/SMS-reminder-app/internal/implementations/sms"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB    *pgxpool.Pool
	Redis *redis.Client

	Now func() time.Time

	UnitOfWork         duow.UnitOfWork
	AdminRepository    admin.AdminRepository
	SessionRepository  admin.SessionRepository
	PatientRepository  patient.Repository
	ReminderRepository reminder.Repository

	RateLimiter drl.RateLimiter

	PasswordHasher        admin.PasswordHasher
	SessionTokenGenerator admin.SessionTokenGenerator

	SmsSender        dsms.Sender
	MessageFormatter dsms.MessageFormatter
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.AdminRepository = dbadmin.NewPgxAdminRepository(deps.DB)
	deps.SessionRepository = dbadmin.NewPgxSessionRepository(deps.DB)
	deps.PatientRepository = dbpatient.NewPgxPatientRepository(deps.DB)
	deps.ReminderRepository = dbreminder.NewPgxReminderRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.SessionTokenGenerator = session.NewUUID()

	deps.SmsSender = sms.NewSNSSender(deps.AwsConfig)
	deps.MessageFormatter = dsms.NewMessageFormatter(deps.Config.SmsSignature)

	deps.initAdminAccount()

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

// initAdminAccount makes sure the configured admin account exists. The
// plaintext password never touches the database, only its hash.
func (deps *Deps) initAdminAccount() {
	ctx := context.Background()

	_, err := deps.AdminRepository.GetByUsername(ctx, deps.Config.AdminUsername)
	if err == nil {
		return
	}
	if !errors.Is(err, admin.ErrAdminDoesNotExist) {
		deps.Logger.Error(ctx, "Could not check admin account.", dl.Entry("err", err))
		panic(err)
	}

	passwordHash, err := deps.PasswordHasher.HashPassword(admin.RawPassword(deps.Config.AdminPassword))
	if err != nil {
		panic(err)
	}
	_, err = deps.AdminRepository.Create(ctx, admin.CreateAdminInput{
		Username:     deps.Config.AdminUsername,
		PasswordHash: passwordHash,
		CreatedAt:    deps.Now(),
	})
	if err != nil && !errors.Is(err, admin.ErrAdminAlreadyExists) {
		deps.Logger.Error(ctx, "Could not create admin account.", dl.Entry("err", err))
		panic(err)
	}
	deps.Logger.Info(ctx, "Admin account created.", dl.Entry("username", deps.Config.AdminUsername))
}
