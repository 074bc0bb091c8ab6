package graph

import (
	"context"
	"errors"

	"github.com/sahilchouksey/todo-graphql-api/database"
	"github.com/sahilchouksey/todo-graphql-api/model"
	"github.com/sahilchouksey/todo-graphql-api/utils/auth"
	"github.com/sahilchouksey/todo-graphql-api/utils/gqlerror"
	"github.com/sahilchouksey/todo-graphql-api/utils/middleware"
	"github.com/sahilchouksey/todo-graphql-api/utils/validation"
	"go.appointy.com/jaal/schemabuilder"
)

// RegisterArgs are the arguments of the register mutation.
type RegisterArgs struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Username  string `validate:"required,min=3,max=150"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
	Password2 string `validate:"required"`
}

// UpdateAccountArgs are the arguments of the updateAccount mutation. Absent
// fields leave the stored value unchanged; supplied values are applied even
// when empty or false.
type UpdateAccountArgs struct {
	FirstName   *string
	LastName    *string
	Email       *string
	IsSuperuser *bool
}

// DeleteAccountArgs are the arguments of the deleteAccount mutation.
type DeleteAccountArgs struct {
	Password string
}

// PasswordChangeArgs are the arguments of the passwordChange mutation.
type PasswordChangeArgs struct {
	OldPassword  string
	NewPassword  string
	CfrmPassword string
}

func (r *Resolver) registerUserQueries(sb *schemabuilder.Schema) {
	q := sb.Query()
	q.FieldFunc("users", r.Users)
	q.FieldFunc("me", r.Me)
}

func (r *Resolver) registerUserMutations(sb *schemabuilder.Schema) {
	m := sb.Mutation()
	m.FieldFunc("register", r.Register)
	m.FieldFunc("updateAccount", r.UpdateAccount)
	m.FieldFunc("deleteAccount", r.DeleteAccount)
	m.FieldFunc("passwordChange", r.PasswordChange)
}

// Users returns all registered users.
func (r *Resolver) Users(ctx context.Context) ([]*User, error) {
	users, err := r.store.ListUsers()
	if err != nil {
		return nil, err
	}
	return newUserList(users), nil
}

// Me returns the authenticated user.
func (r *Resolver) Me(ctx context.Context) (*User, error) {
	viewer, ok := middleware.ViewerFromContext(ctx)
	if !ok {
		return nil, gqlerror.Unauthenticated("Not logged in!")
	}
	return newUser(viewer), nil
}

// Register creates a new user with a hashed password.
func (r *Resolver) Register(ctx context.Context, args RegisterArgs) (*User, error) {
	if err := r.validator.ValidateStruct(args); err != nil {
		return nil, gqlerror.Validation("%s", validation.Message(err))
	}

	if _, err := r.store.GetUserByEmail(args.Email); err == nil {
		return nil, gqlerror.Conflict("Email is already in use!")
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	if _, err := r.store.GetUserByUsername(args.Username); err == nil {
		return nil, gqlerror.Conflict("Username is already in use!")
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	if err := auth.CheckConfirmation(args.Password, args.Password2); err != nil {
		return nil, gqlerror.Validation("Password mismatch! Please check again")
	}

	hash, err := auth.HashPassword(args.Password)
	if err != nil {
		return nil, gqlerror.Validation("%s", err.Error())
	}

	user := &model.User{
		FirstName:    args.FirstName,
		LastName:     args.LastName,
		Username:     args.Username,
		Email:        args.Email,
		PasswordHash: hash,
	}
	if err := r.store.CreateUser(user); err != nil {
		return nil, err
	}
	return newUser(user), nil
}

// UpdateAccount overwrites the supplied profile fields of the authenticated
// user.
func (r *Resolver) UpdateAccount(ctx context.Context, args UpdateAccountArgs) (*User, error) {
	user, err := r.requireViewer(ctx, "Please login to update account!")
	if err != nil {
		return nil, err
	}

	if args.FirstName != nil {
		user.FirstName = *args.FirstName
	}
	if args.LastName != nil {
		user.LastName = *args.LastName
	}
	if args.Email != nil {
		user.Email = *args.Email
	}
	if args.IsSuperuser != nil {
		user.IsSuperuser = *args.IsSuperuser
	}

	if err := r.store.SaveUser(user); err != nil {
		return nil, err
	}
	return newUser(user), nil
}

// DeleteAccount removes the authenticated user's account after checking the
// supplied password, and echoes that password back.
func (r *Resolver) DeleteAccount(ctx context.Context, args DeleteAccountArgs) (string, error) {
	user, err := r.requireViewer(ctx, "Please login to delete account!")
	if err != nil {
		return "", err
	}

	if err := auth.VerifyPassword(user.PasswordHash, args.Password); err != nil {
		return "", gqlerror.Validation("Please specify correct password to delete account")
	}

	if err := r.store.DeleteUser(user.ID); err != nil {
		return "", err
	}
	return args.Password, nil
}

// PasswordChange re-hashes and stores the new password. Outstanding tokens
// are invalidated by bumping the user's token version.
func (r *Resolver) PasswordChange(ctx context.Context, args PasswordChangeArgs) (*User, error) {
	user, err := r.requireViewer(ctx, "You must be logged in to change your password")
	if err != nil {
		return nil, err
	}

	if err := auth.VerifyPassword(user.PasswordHash, args.OldPassword); err != nil {
		return nil, gqlerror.Validation("Old password is incorrect")
	}

	if err := auth.CheckConfirmation(args.NewPassword, args.CfrmPassword); err != nil {
		return nil, gqlerror.Validation("Password mismatch! Please check again")
	}

	hash, err := auth.HashPassword(args.NewPassword)
	if err != nil {
		return nil, gqlerror.Validation("%s", err.Error())
	}

	user.PasswordHash = hash
	user.TokenVersion++
	if err := r.store.SaveUser(user); err != nil {
		return nil, err
	}
	return newUser(user), nil
}

// requireViewer loads a fresh copy of the authenticated user, or fails with
// Unauthenticated carrying the given message.
func (r *Resolver) requireViewer(ctx context.Context, message string) (*model.User, error) {
	viewer, ok := middleware.ViewerFromContext(ctx)
	if !ok {
		return nil, gqlerror.Unauthenticated("%s", message)
	}

	user, err := r.store.GetUserByID(viewer.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, gqlerror.Unauthenticated("%s", message)
		}
		return nil, err
	}
	return user, nil
}
