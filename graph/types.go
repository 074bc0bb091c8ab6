package graph

import (
	"context"
	"time"

	"github.com/sahilchouksey/todo-graphql-api/model"
	"go.appointy.com/jaal/schemabuilder"
)

// The GraphQL views are hand-written mappings of the stored entities. Every
// selectable field is registered explicitly below; the User view carries no
// password field in any form.

// Todo is the GraphQL view of a stored todo item.
type Todo struct {
	Id           int64
	Title        string
	Description  string
	Priority     model.Priority
	Status       model.Status
	CreatedBy    *User
	CreateDate   time.Time
	ModifiedDate time.Time
}

// User is the GraphQL view of a registered user.
type User struct {
	Id          int64
	FirstName   string
	LastName    string
	Username    string
	Email       string
	IsSuperuser bool
}

// AuthPayload is returned by tokenAuth.
type AuthPayload struct {
	Token string
	User  *User
}

// TokenPayload mirrors the claims exposed by verifyToken.
type TokenPayload struct {
	Username string
	Exp      int64
	OrigIat  int64
}

// RefreshPayload is returned by refreshToken.
type RefreshPayload struct {
	Token   string
	Payload *TokenPayload
}

func newTodo(t *model.Todo) *Todo {
	if t == nil {
		return nil
	}
	return &Todo{
		Id:           int64(t.ID),
		Title:        t.Title,
		Description:  t.Description,
		Priority:     t.Priority,
		Status:       t.Status,
		CreatedBy:    newUser(t.CreatedBy),
		CreateDate:   t.CreateDate,
		ModifiedDate: t.ModifiedDate,
	}
}

func newTodoList(todos []model.Todo) []*Todo {
	out := make([]*Todo, 0, len(todos))
	for i := range todos {
		out = append(out, newTodo(&todos[i]))
	}
	return out
}

func newUser(u *model.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		Id:          int64(u.ID),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Username:    u.Username,
		Email:       u.Email,
		IsSuperuser: u.IsSuperuser,
	}
}

func newUserList(users []model.User) []*User {
	out := make([]*User, 0, len(users))
	for i := range users {
		out = append(out, newUser(&users[i]))
	}
	return out
}

func registerEnums(sb *schemabuilder.Schema) {
	sb.Enum(model.PriorityLow, map[string]interface{}{
		"LOW":    model.PriorityLow,
		"MEDIUM": model.PriorityMedium,
		"HIGH":   model.PriorityHigh,
	})

	sb.Enum(model.StatusActive, map[string]interface{}{
		"ACTIVE": model.StatusActive,
		"DONE":   model.StatusDone,
		"CLOSED": model.StatusClosed,
	})
}

// registerObjects exposes the view structs field by field. Object fields come
// exclusively from FieldFunc registrations.
func registerObjects(sb *schemabuilder.Schema) {
	todo := sb.Object("Todo", Todo{})
	todo.FieldFunc("id", func(ctx context.Context, in *Todo) int64 { return in.Id })
	todo.FieldFunc("title", func(ctx context.Context, in *Todo) string { return in.Title })
	todo.FieldFunc("description", func(ctx context.Context, in *Todo) string { return in.Description })
	todo.FieldFunc("priority", func(ctx context.Context, in *Todo) model.Priority { return in.Priority })
	todo.FieldFunc("status", func(ctx context.Context, in *Todo) model.Status { return in.Status })
	todo.FieldFunc("createdBy", func(ctx context.Context, in *Todo) *User { return in.CreatedBy })
	// Dates go out as RFC 3339 strings, the same rendering the original API
	// produced for its datetime fields.
	todo.FieldFunc("createDate", func(ctx context.Context, in *Todo) string {
		return in.CreateDate.Format(time.RFC3339)
	})
	todo.FieldFunc("modifiedDate", func(ctx context.Context, in *Todo) string {
		return in.ModifiedDate.Format(time.RFC3339)
	})

	user := sb.Object("User", User{})
	user.FieldFunc("id", func(ctx context.Context, in *User) int64 { return in.Id })
	user.FieldFunc("firstName", func(ctx context.Context, in *User) string { return in.FirstName })
	user.FieldFunc("lastName", func(ctx context.Context, in *User) string { return in.LastName })
	user.FieldFunc("username", func(ctx context.Context, in *User) string { return in.Username })
	user.FieldFunc("email", func(ctx context.Context, in *User) string { return in.Email })
	user.FieldFunc("isSuperuser", func(ctx context.Context, in *User) bool { return in.IsSuperuser })

	auth := sb.Object("AuthPayload", AuthPayload{})
	auth.FieldFunc("token", func(ctx context.Context, in *AuthPayload) string { return in.Token })
	auth.FieldFunc("user", func(ctx context.Context, in *AuthPayload) *User { return in.User })

	tokenPayload := sb.Object("TokenPayload", TokenPayload{})
	tokenPayload.FieldFunc("username", func(ctx context.Context, in *TokenPayload) string { return in.Username })
	tokenPayload.FieldFunc("exp", func(ctx context.Context, in *TokenPayload) int64 { return in.Exp })
	tokenPayload.FieldFunc("origIat", func(ctx context.Context, in *TokenPayload) int64 { return in.OrigIat })

	refresh := sb.Object("RefreshPayload", RefreshPayload{})
	refresh.FieldFunc("token", func(ctx context.Context, in *RefreshPayload) string { return in.Token })
	refresh.FieldFunc("payload", func(ctx context.Context, in *RefreshPayload) *TokenPayload { return in.Payload })
}
