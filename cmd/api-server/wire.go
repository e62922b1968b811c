//go:build wireinject
// +build wireinject

package main

import (
	"DevHub/config"
	"DevHub/dao"
	"DevHub/dao/cache"
	"DevHub/handler"
	"DevHub/pkg/client"
	"DevHub/pkg/database"
	"DevHub/pkg/mq"
	"DevHub/pkg/oss"
	"DevHub/pkg/server"
	"DevHub/service"
	"DevHub/socket"
	"DevHub/worker"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideRocketMQConfig,
		mq.InitProducer,
		mq.InitSimpleConsumer,
		oss.GetOssClient,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Project), "*"),
		wire.Struct(new(handler.Snippet), "*"),
		wire.Struct(new(handler.Comments), "*"),
		wire.Struct(new(handler.Community), "*"),
		wire.Struct(new(handler.CommunityPost), "*"),
		wire.Struct(new(handler.Notification), "*"),
		wire.Struct(new(handler.Subscription), "*"),
		wire.Struct(new(handler.Support), "*"),
		wire.Struct(new(handler.Blog), "*"),
		wire.Struct(new(handler.Upload), "*"),
		wire.Struct(new(socket.WSHandler), "*"),

		socket.NewHub,
		socket.NewSubscriber,
		worker.NewNotifyConsumer,
		worker.NewProSweeper,
		newJobs,

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
