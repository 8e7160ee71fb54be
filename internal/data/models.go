package data

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Account maps to accounts collection (id, email, password hash, timestamps)
type Account struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

// Session maps to sessions collection; the id is the token's jti.
type Session struct {
	ID        string        `bson:"_id"`
	UserID    bson.ObjectID `bson:"user_id"`
	CreatedAt time.Time     `bson:"created_at"`
	ExpiresAt time.Time     `bson:"expires_at"`
}

// RoleGrant maps to user_roles collection
type RoleGrant struct {
	UserID    bson.ObjectID `bson:"user_id"`
	Role      string        `bson:"role"`
	CreatedAt time.Time     `bson:"created_at"`
}

// Profile maps to profiles collection; _id equals the account id.
type Profile struct {
	ID             bson.ObjectID `bson:"_id"`
	FullName       string        `bson:"full_name"`
	AvatarURL      string        `bson:"avatar_url,omitempty"`
	Bio            string        `bson:"bio,omitempty"`
	Role           string        `bson:"role"`
	Department     string        `bson:"department,omitempty"`
	Year           string        `bson:"year,omitempty"`
	Subject        string        `bson:"subject,omitempty"`
	FollowersCount int64         `bson:"followers_count"`
	FollowingCount int64         `bson:"following_count"`
	CreatedAt      time.Time     `bson:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at"`
}

// ProfileUpdate carries the mutable profile fields; nil means unchanged.
type ProfileUpdate struct {
	FullName   *string
	AvatarURL  *string
	Bio        *string
	Department *string
	Year       *string
	Subject    *string
}

// Follow maps to follows collection
type Follow struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	FollowerID  bson.ObjectID `bson:"follower_id"`
	FollowingID bson.ObjectID `bson:"following_id"`
	CreatedAt   time.Time     `bson:"created_at"`
}

// Post maps to posts collection
type Post struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	UserID        bson.ObjectID `bson:"user_id"`
	Content       string        `bson:"content"`
	Hashtags      []string      `bson:"hashtags"`
	LikesCount    int64         `bson:"likes_count"`
	CommentsCount int64         `bson:"comments_count"`
	CreatedAt     time.Time     `bson:"created_at"`
}

// PostSort selects the feed ordering.
type PostSort string

const (
	SortLatest  PostSort = "latest"
	SortPopular PostSort = "popular"
)

// Like maps to likes collection
type Like struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	PostID    bson.ObjectID `bson:"post_id"`
	UserID    bson.ObjectID `bson:"user_id"`
	CreatedAt time.Time     `bson:"created_at"`
}

// Event maps to events collection. Dates and times are kept as the
// strings the calendar works with (YYYY-MM-DD, HH:MM) so they sort lexically.
type Event struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       string        `bson:"title"`
	Description string        `bson:"description,omitempty"`
	Location    string        `bson:"location,omitempty"`
	EventDate   string        `bson:"event_date"`
	StartTime   string        `bson:"start_time,omitempty"`
	EndTime     string        `bson:"end_time,omitempty"`
	EventType   string        `bson:"event_type"`
	CreatedBy   bson.ObjectID `bson:"created_by"`
	CreatedAt   time.Time     `bson:"created_at"`
}

// Community maps to communities collection
type Community struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Description string        `bson:"description,omitempty"`
	Icon        string        `bson:"icon,omitempty"`
	MemberCount int64         `bson:"member_count"`
	CreatedAt   time.Time     `bson:"created_at"`
}

// CommunityMember maps to community_members collection
type CommunityMember struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	CommunityID bson.ObjectID `bson:"community_id"`
	UserID      bson.ObjectID `bson:"user_id"`
	JoinedAt    time.Time     `bson:"joined_at"`
}

// Conversation maps to conversations collection
type Conversation struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	CreatedAt time.Time     `bson:"created_at"`
}

// Participant maps to conversation_participants collection
type Participant struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	ConversationID bson.ObjectID `bson:"conversation_id"`
	UserID         bson.ObjectID `bson:"user_id"`
	JoinedAt       time.Time     `bson:"joined_at"`
}

// Message maps to messages collection (conversation, sender, content, read flag)
type Message struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	ConversationID bson.ObjectID `bson:"conversation_id"`
	SenderID       bson.ObjectID `bson:"sender_id"`
	Content        string        `bson:"content"`
	CreatedAt      time.Time     `bson:"created_at"`
	IsRead         bool          `bson:"is_read"`
}
