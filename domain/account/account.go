package account

import (
	"errors"
	"time"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
)

const (
	MinPasswordLength = 8
	MinUsernameLength = 3
)

// Account is user's account stored in database
type Account struct {
	Id            string         `bson:"_id"`
	Username      string         `bson:"username"`
	Email         string         `bson:"email"`
	PasswordHash  []byte         `bson:"passwordHash"`
	WalletAddress domain.Address `bson:"walletAddress"`
	Nonce         int32          `bson:"nonce"`
	CreatedAt     time.Time      `bson:"createdAt,omitempty"`
	UpdatedAt     time.Time      `bson:"updatedAt,omitempty"`
}

func (a *Account) ToInfo() *Info {
	return &Info{
		Id:            a.Id,
		Username:      a.Username,
		Email:         a.Email,
		WalletAddress: a.WalletAddress,
		CreatedAtMs:   a.CreatedAt.UnixMilli(),
	}
}

// Info is the account returned to clients
type Info struct {
	Id            string         `json:"id"`
	Username      string         `json:"username"`
	Email         string         `json:"email"`
	WalletAddress domain.Address `json:"walletAddress"`
	CreatedAtMs   int64          `json:"createdAtMs,omitempty"`
}

type SignUpForm struct {
	Username        string `json:"username" example:"alice"`
	Email           string `json:"email" example:"alice@example.com"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type SignInForm struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password"`
}

// Session is returned by sign up and sign in
type Session struct {
	Token   string `json:"token"`
	Account *Info  `json:"account"`
}

// Updater holds the mutable fields of an account
type Updater struct {
	WalletAddress *domain.Address `bson:"walletAddress,omitempty"`
	Nonce         *int32          `bson:"nonce,omitempty"`
	UpdatedAt     time.Time       `bson:"updatedAt,omitempty"`
}

var (
	// ErrInvalidNonce occured when validating a signature but the nonce of the account has not generated
	ErrInvalidNonce = errors.New("invalid nonce")
	// ErrInvalidSignature occured when a signature is invalid
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrNoWallet occured when an action needs a linked wallet
	ErrNoWallet = errors.New("no wallet linked to account")
)

type findOptions struct {
	Id       *string
	Username *string
	Email    *string
}

type FindOptions func(*findOptions) error

func GetFindOptions(opts ...FindOptions) (findOptions, error) {
	res := findOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithId(id string) FindOptions {
	return func(options *findOptions) error {
		options.Id = &id
		return nil
	}
}

func WithUsername(username string) FindOptions {
	return func(options *findOptions) error {
		options.Username = &username
		return nil
	}
}

func WithEmail(email string) FindOptions {
	return func(options *findOptions) error {
		options.Email = &email
		return nil
	}
}

// Usecase is account usecase
type Usecase interface {
	// SignUp validates the form before touching storage
	SignUp(c ctx.Ctx, form *SignUpForm) (*Session, error)
	SignIn(c ctx.Ctx, form *SignInForm) (*Session, error)
	Get(c ctx.Ctx, id string) (*Info, error)
	// Refresh signs a new session with the account's current wallet
	Refresh(c ctx.Ctx, id string) (*Session, error)
	GenerateNonce(c ctx.Ctx, id string) (int32, error)
	// LinkWallet checks signature over the signing message of the current nonce and stores address
	LinkWallet(c ctx.Ctx, id string, address domain.Address, signature string) (*Info, error)
}

// Repo is account repo
type Repo interface {
	FindOne(c ctx.Ctx, opts ...FindOptions) (*Account, error)
	Insert(c ctx.Ctx, account *Account) error
	Update(c ctx.Ctx, id string, updater *Updater) error
}
