package bootstrap

import (
	"context"
	"log"
	"time"

	"project-collab-be/internal/chat"
	"project-collab-be/internal/config"
	"project-collab-be/internal/controller"
	"project-collab-be/internal/pkg/logger"
	"project-collab-be/internal/pkg/mailer"
	"project-collab-be/internal/pkg/serverutils"
	"project-collab-be/internal/pkg/token"
	"project-collab-be/internal/repository/memory"
	"project-collab-be/internal/repository/unitofwork"
	"project-collab-be/internal/service"
	"project-collab-be/pkg/blob"
	pktNats "project-collab-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const contactCacheTTL = 5 * time.Minute

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	UserController     controller.IUserController
	ProjectController  controller.IProjectController
	QuestionController controller.IQuestionController
	FeedbackController controller.IFeedbackController
	BidController      controller.IBidController
	FileController     controller.IFileController
	ChatController     controller.IChatController

	// WebSocket chat
	ChatHandler *chat.Handler
	ChatHub     *chat.Hub

	// Background Services (exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	verifier := token.NewHMACVerifier(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryMinutes)*time.Minute)
	authGuard := serverutils.JwtMiddleware(verifier)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	blobStore, err := blob.NewS3Store(context.Background(), cfg.Blob.Region, cfg.Blob.Bucket)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize blob store: %v", err)
	}

	// 3. Chat subsystem
	chatLogger := logger.NewIsolatedLogger(cfg.App.ChatLogFilePath)
	chatHub := chat.NewHub(rdb, chatLogger)
	go chatHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ActivityTopic, uowFactory, natsPub, sysLogger)

	contactCache := memory.NewContactCache(contactCacheTTL, 2*contactCacheTTL)

	authService := service.NewAuthService(uowFactory, verifier, publisherService)
	userService := service.NewUserService(uowFactory, contactCache)
	projectService := service.NewProjectService(uowFactory)
	questionService := service.NewQuestionService(uowFactory, publisherService)
	feedbackService := service.NewFeedbackService(uowFactory, emailService, publisherService, sysLogger)
	bidService := service.NewBidService(uowFactory, publisherService)
	fileService := service.NewFileService(blobStore, projectService, emailService, cfg.App.ClientURL, sysLogger)
	chatService := service.NewChatService(uowFactory, publisherService)

	chatGateway := chat.NewGateway(chatHub, verifier, chatService, chatService, chatLogger)

	// 5. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		UserController:     controller.NewUserController(userService, authGuard),
		ProjectController:  controller.NewProjectController(projectService, authGuard),
		QuestionController: controller.NewQuestionController(questionService, authGuard),
		FeedbackController: controller.NewFeedbackController(feedbackService, authGuard),
		BidController:      controller.NewBidController(bidService, authGuard),
		FileController:     controller.NewFileController(fileService, authGuard),
		ChatController:     controller.NewChatController(chatService, authGuard),

		ChatHandler: chat.NewHandler(chatGateway),
		ChatHub:     chatHub,

		ConsumerService: consumerService,
	}
}
