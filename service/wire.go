package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(ProjectService), "*"),
	wire.Bind(new(IProjectService), new(*ProjectService)),

	wire.Struct(new(SnippetService), "*"),
	wire.Bind(new(ISnippetService), new(*SnippetService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(CollectService), "*"),
	wire.Bind(new(ICollectService), new(*CollectService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(CommunityService), "*"),
	wire.Bind(new(ICommunityService), new(*CommunityService)),

	wire.Struct(new(CommunityMemberService), "*"),
	wire.Bind(new(ICommunityMemberService), new(*CommunityMemberService)),

	wire.Struct(new(CommunityPostService), "*"),
	wire.Bind(new(ICommunityPostService), new(*CommunityPostService)),

	wire.Struct(new(NotificationService), "*"),
	wire.Bind(new(INotificationService), new(*NotificationService)),

	wire.Struct(new(SubscriptionService), "*"),
	wire.Bind(new(ISubscriptionService), new(*SubscriptionService)),

	wire.Struct(new(SupportService), "*"),
	wire.Bind(new(ISupportService), new(*SupportService)),

	wire.Struct(new(BlogService), "*"),
	wire.Bind(new(IBlogService), new(*BlogService)),

	wire.Struct(new(UploadService), "*"),
	wire.Bind(new(IUploadService), new(*UploadService)),
)
