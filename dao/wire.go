//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewUserStatsDAO,
	NewUserFollowDAO,
	NewProjectDAO,
	NewProjectStatsDAO,
	NewProjectLikeDAO,
	NewSavedProjectDAO,
	NewSnippetDAO,
	NewSnippetStatsDAO,
	NewSnippetLikeDAO,
	NewSavedSnippetDAO,
	NewComment,
	NewCommentLike,
	NewCommunityDAO,
	NewCommunityMemberDAO,
	NewCommunityPostDAO,
	NewPostLikeDAO,
	NewCommunityCommentDAO,
	NewNotificationDAO,
	NewSubscriptionDAO,
	NewSupportRequestDAO,
	NewBlogPostDAO,
	NewImageDAO,
)
