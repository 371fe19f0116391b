// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/haierkeys/note-folder-service/internal/dao"
	"github.com/haierkeys/note-folder-service/internal/domain"
	"github.com/haierkeys/note-folder-service/internal/service"
	pkgapp "github.com/haierkeys/note-folder-service/pkg/app"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	FolderRepo domain.FolderRepository
	NoteRepo   domain.NoteRepository
	Transactor domain.Transactor

	// Service 层
	FolderService service.FolderService
	NoteService   service.NoteService

	// 基础设施组件
	TokenManager pkgapp.TokenManager

	// StartTime 容器创建时间，用于计算运行时长
	StartTime time.Time

	shutdownOnce sync.Once
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		DB:        db,
		StartTime: time.Now(),
	}

	a.Dao = dao.New(db,
		dao.WithConfig(cfg.DaoConfig()),
		dao.WithLogger(logger),
	)

	a.TokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    pkgapp.DefaultTokenIssuer,
		Expiry:    cfg.GetTokenExpiry(),
	})

	// 初始化 Repository 层
	a.FolderRepo = dao.NewFolderRepository(a.Dao)
	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.Transactor = dao.NewTransactor(a.Dao)

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := &service.ServiceConfig{
		Folder: service.FolderServiceConfig{
			AtomicDelete: cfg.IsAtomicDelete(),
		},
	}

	// 初始化 Service 层（依赖注入）
	a.FolderService = service.NewFolderService(a.FolderRepo, a.NoteRepo, a.Transactor, svcConfig.Folder, logger)
	a.NoteService = service.NewNoteService(a.NoteRepo, a.FolderRepo, logger)

	logger.Info("App container initialized successfully",
		zap.String("database", cfg.Database.Type),
		zap.Bool("atomicDelete", svcConfig.Folder.AtomicDelete))

	return a, nil
}

// DaoConfig 将应用配置转换为 DAO 层数据库配置
func (c *AppConfig) DaoConfig() *dao.DatabaseConfig {
	return &dao.DatabaseConfig{
		Type:            c.Database.Type,
		Path:            c.Database.Path,
		UserName:        c.Database.UserName,
		Password:        c.Database.Password,
		Host:            c.Database.Host,
		Port:            c.Database.Port,
		Name:            c.Database.Name,
		TablePrefix:     c.Database.TablePrefix,
		AutoMigrate:     boolValue(c.Database.AutoMigrate, true),
		Charset:         c.Database.Charset,
		ParseTime:       boolValue(c.Database.ParseTime, true),
		SSLMode:         c.Database.SSLMode,
		MaxIdleConns:    c.Database.MaxIdleConns,
		MaxOpenConns:    c.Database.MaxOpenConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		ConnMaxIdleTime: c.Database.ConnMaxIdleTime,
		RunMode:         c.Server.RunMode,
		Tracing:         c.Database.Tracing,
	}
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// Ping 检查数据库连接
func (a *App) Ping(ctx context.Context) error {
	return a.Dao.Ping(ctx)
}

// GetAuthTokenKey 获取 Token 密钥
func (a *App) GetAuthTokenKey() string {
	return a.config.Security.AuthTokenKey
}

// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

// Shutdown 优雅关闭应用容器，重复调用只执行一次
func (a *App) Shutdown(ctx context.Context) error {
	var err error
	a.shutdownOnce.Do(func() {
		a.logger.Info("App container shutting down...")

		if ctx == nil {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(context.Background(), DefaultShutdownTimeout)
			defer cancel()
		}

		done := make(chan error, 1)
		go func() { done <- a.Close() }()

		select {
		case err = <-done:
		case <-ctx.Done():
			err = fmt.Errorf("database close timeout: %w", ctx.Err())
		}

		if err != nil {
			a.logger.Warn("App container shutdown completed with errors", zap.Error(err))
			return
		}
		a.logger.Info("App container shutdown completed successfully")
	})
	return err
}
