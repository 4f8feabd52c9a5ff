package cmd

import (
	"bookshelf/internal/config"
	"bookshelf/internal/core"
	"bookshelf/internal/db"
	"bookshelf/internal/http/handler"
	"bookshelf/internal/http/handler/middleware"
	"bookshelf/internal/http/payload"
	"bookshelf/internal/http/server"
	"bookshelf/internal/repository"
	"bookshelf/pkg/jwt"
	"bookshelf/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("bookshelf", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewShelfRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// shelf
	shelf := core.NewShelf(
		logger,
		repo,
		jwtService)

	// handler
	shelfHlr := handler.NewShelfHandler(
		logger,
		payload.Decoder{},
		shelf)

	// book routes sit behind the token gate
	authMw := middleware.NewAuthMiddleware(logger, jwtService)
	bookMux := http.NewServeMux()
	bookMux.HandleFunc(handler.CreateBook, shelfHlr.HandleCreateBook)
	bookMux.HandleFunc(handler.ListBooks, shelfHlr.HandleGetBooks)
	bookMux.HandleFunc(handler.GetBook, shelfHlr.HandleGetBook)
	bookMux.HandleFunc(handler.UpdateBook, shelfHlr.HandleUpdateBook)
	bookMux.HandleFunc(handler.DeleteBook, shelfHlr.HandleDeleteBook)

	mux := http.NewServeMux()
	mux.HandleFunc(handler.Register, shelfHlr.HandleRegister)
	mux.HandleFunc(handler.Login, shelfHlr.HandleLogin)
	mux.Handle("/api/book/", authMw.Authorize(bookMux))

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
