package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/streadway/amqp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/vidstream/internal/moderation"
	"github.com/Guyuepp/vidstream/internal/repository"
	mysqlRepo "github.com/Guyuepp/vidstream/internal/repository/mysql"
	"github.com/Guyuepp/vidstream/internal/repository/rabbitmq"
	myRedisCache "github.com/Guyuepp/vidstream/internal/repository/redis"
	"github.com/Guyuepp/vidstream/internal/workers"

	"github.com/Guyuepp/vidstream/internal/rest"
	"github.com/Guyuepp/vidstream/internal/rest/middleware"
	"github.com/Guyuepp/vidstream/internal/usecase/category"
	"github.com/Guyuepp/vidstream/internal/usecase/comment"
	"github.com/Guyuepp/vidstream/internal/usecase/gift"
	"github.com/Guyuepp/vidstream/internal/usecase/memberpack"
	"github.com/Guyuepp/vidstream/internal/usecase/playlist"
	"github.com/Guyuepp/vidstream/internal/usecase/stats"
	"github.com/Guyuepp/vidstream/internal/usecase/user"
	"github.com/Guyuepp/vidstream/internal/usecase/video"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
	viewSyncInterval    = 30 * time.Second
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Local")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare message queue
	amqpConn, err := amqp.Dial(os.Getenv("AMQP_URL"))
	if err != nil {
		log.Fatal("failed to open connection to rabbitmq", err)
	}
	defer amqpConn.Close()

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	categoryRepo := mysqlRepo.NewCategoryRepository(db)
	giftRepo := mysqlRepo.NewGiftRepository(db)
	playlistRepo := mysqlRepo.NewPlaylistRepository(db)
	packRepo := mysqlRepo.NewMemberPackRepository(db)
	statsRepo := mysqlRepo.NewStatsRepository(db)

	// Video相关的三层架构
	// 1. DB层
	videoDBRepo := mysqlRepo.NewVideoDBRepository(db)
	// 2. Cache层
	videoCache := myRedisCache.NewVideoCache(client)
	// 3. Repository协调层
	videoRepo := repository.NewVideoRepository(videoDBRepo, videoCache, userRepo)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, bloomBitSize)

	seatCache := myRedisCache.NewGiftSeatCache(client)
	giftPublisher, err := rabbitmq.NewGiftEventPublisher(amqpConn)
	if err != nil {
		log.Fatal("failed to declare gift queue", err)
	}

	moderator := moderation.NewTextModerator(strings.Split(os.Getenv("BANNED_WORDS"), ","))

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	viewsSyncer := workers.NewSyncViewsWorker(videoDBRepo, videoCache, viewSyncInterval)
	go viewsSyncer.Start(ctx)

	// Build service Layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))

	videoSvc := video.NewService(videoRepo, userRepo, categoryRepo, bloomRepo)
	userSvc := user.NewService(userRepo, jwtSecret)
	commentSvc := comment.NewService(commentRepo, userRepo, videoRepo, bloomRepo, moderator)
	categorySvc := category.NewService(categoryRepo)
	giftSvc := gift.NewService(giftRepo, videoRepo, userRepo, seatCache, giftPublisher)
	playlistSvc := playlist.NewService(playlistRepo, videoRepo)
	packSvc := memberpack.NewService(packRepo)
	statsSvc := stats.NewService(userRepo, videoDBRepo, statsRepo, giftRepo)

	videoHandler := rest.NewVideoHandler(videoSvc)
	userHandler := rest.NewUserHandler(userSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	categoryHandler := rest.NewCategoryHandler(categorySvc)
	giftHandler := rest.NewGiftHandler(giftSvc)
	playlistHandler := rest.NewPlaylistHandler(playlistSvc)
	packHandler := rest.NewMemberPackHandler(packSvc)
	statsHandler := rest.NewStatsHandler(statsSvc)

	authMiddleware := middleware.Auth(jwtSecret)

	// Prepare bloom filter
	if err := videoSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/videos", videoHandler.FetchVideo)
	route.GET("/videos/:id", videoHandler.GetByID)
	route.GET("/videos/:id/comments", commentHandler.FetchCommentsByVideo)
	route.GET("/videos/:id/gifts", giftHandler.FetchRecords)

	route.GET("/comments/:id", commentHandler.GetComment)
	route.GET("/comments/:id/replies", commentHandler.FetchReplies)
	route.GET("/comments/:id/thread", commentHandler.FetchThread)

	route.GET("/categories", categoryHandler.Fetch)
	route.GET("/categories/:id", categoryHandler.GetByID)
	route.GET("/categories/:id/videos", videoHandler.FetchByCategory)

	route.GET("/gifts", giftHandler.Fetch)
	route.GET("/gifts/:id", giftHandler.GetByID)

	route.GET("/member-packs", packHandler.Fetch)
	route.GET("/member-packs/:id", packHandler.GetByID)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.GET("/users/me", userHandler.GetProfile)
		authorized.PUT("/users/me/password", userHandler.EditPassword)

		authorized.POST("/videos", videoHandler.Store)
		authorized.PUT("/videos/:id", videoHandler.Update)
		authorized.DELETE("/videos/:id", videoHandler.Delete)

		authorized.POST("/videos/:id/comments", commentHandler.CreateComment)
		authorized.PUT("/comments/:id", commentHandler.UpdateComment)
		authorized.DELETE("/comments/:id", commentHandler.DeleteComment)
		authorized.POST("/comments/:id/like", commentHandler.ToggleLike)

		authorized.POST("/videos/:id/gifts", giftHandler.Send)

		authorized.GET("/playlists", playlistHandler.FetchMine)
		authorized.POST("/playlists", playlistHandler.Store)
		authorized.GET("/playlists/:id", playlistHandler.GetByID)
		authorized.PUT("/playlists/:id", playlistHandler.Update)
		authorized.DELETE("/playlists/:id", playlistHandler.Delete)
		authorized.POST("/playlists/:id/videos", playlistHandler.AddVideo)
		authorized.DELETE("/playlists/:id/videos/:videoID", playlistHandler.RemoveVideo)
	}

	admin := route.Group("/admin")
	admin.Use(authMiddleware, middleware.AdminOnly())
	{
		admin.POST("/categories", categoryHandler.Store)
		admin.PUT("/categories/:id", categoryHandler.Update)
		admin.DELETE("/categories/:id", categoryHandler.Delete)

		admin.POST("/gifts", giftHandler.Store)
		admin.PUT("/gifts/:id", giftHandler.Update)
		admin.DELETE("/gifts/:id", giftHandler.Delete)

		admin.POST("/member-packs", packHandler.Store)
		admin.PUT("/member-packs/:id", packHandler.Update)
		admin.DELETE("/member-packs/:id", packHandler.Delete)

		admin.GET("/stats", statsHandler.Snapshot)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
