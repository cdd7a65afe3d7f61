package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/ethereum"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/base/ptr"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/account"
)

const (
	nonceRange   = 9999999
	invalidNonce = -1
)

type AccountUseCaseCfg struct {
	Repo account.Repo
	Auth domain.AuthUsecase
	// SignatureMsg is a format string with one %d verb for the nonce
	SignatureMsg string
}

type impl struct {
	repo         account.Repo
	auth         domain.AuthUsecase
	signatureMsg string
	now          func() time.Time
}

func NewAccountUseCase(cfg *AccountUseCaseCfg) account.Usecase {
	return &impl{
		repo:         cfg.Repo,
		auth:         cfg.Auth,
		signatureMsg: cfg.SignatureMsg,
		now:          time.Now,
	}
}

func validateSignUp(form *account.SignUpForm) error {
	if form.Password != form.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	if len(form.Password) < account.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}
	if !strings.Contains(form.Email, "@") {
		return domain.ErrInvalidEmail
	}
	if len(form.Username) < account.MinUsernameLength {
		return domain.ErrUsernameTooShort
	}
	return nil
}

func (im *impl) SignUp(c ctx.Ctx, form *account.SignUpForm) (*account.Session, error) {
	if err := validateSignUp(form); err != nil {
		return nil, err
	}
	c = ctx.WithValues(c, log.Fields{
		"username": form.Username,
		"email":    form.Email,
	})

	for _, opt := range []account.FindOptions{account.WithUsername(form.Username), account.WithEmail(form.Email)} {
		if _, err := im.repo.FindOne(c, opt); err == nil {
			return nil, domain.ErrConflict
		} else if err != domain.ErrNotFound {
			c.WithField("err", err).Error("repo.FindOne failed")
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		c.WithField("err", err).Error("bcrypt.GenerateFromPassword failed")
		return nil, err
	}

	now := im.now()
	a := &account.Account{
		Id:           uuid.NewString(),
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: hash,
		Nonce:        invalidNonce,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := im.repo.Insert(c, a); err != nil {
		c.WithField("err", err).Error("repo.Insert failed")
		return nil, err
	}
	c.WithField("id", a.Id).Info("account created")
	return im.session(c, a)
}

func (im *impl) SignIn(c ctx.Ctx, form *account.SignInForm) (*account.Session, error) {
	if form.Username == "" || form.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	a, err := im.repo.FindOne(c, account.WithUsername(form.Username))
	if err == domain.ErrNotFound {
		return nil, domain.ErrInvalidCredentials
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(form.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return im.session(c, a)
}

func (im *impl) session(c ctx.Ctx, a *account.Account) (*account.Session, error) {
	token, err := im.auth.SignToken(c, a.Id, a.WalletAddress)
	if err != nil {
		c.WithField("err", err).Error("auth.SignToken failed")
		return nil, err
	}
	return &account.Session{
		Token:   token,
		Account: a.ToInfo(),
	}, nil
}

func (im *impl) Get(c ctx.Ctx, id string) (*account.Info, error) {
	a, err := im.repo.FindOne(c, account.WithId(id))
	if err != nil {
		return nil, err
	}
	return a.ToInfo(), nil
}

func (im *impl) Refresh(c ctx.Ctx, id string) (*account.Session, error) {
	a, err := im.repo.FindOne(c, account.WithId(id))
	if err != nil {
		return nil, err
	}
	return im.session(c, a)
}

func (im *impl) GenerateNonce(c ctx.Ctx, id string) (int32, error) {
	if _, err := im.repo.FindOne(c, account.WithId(id)); err != nil {
		return 0, err
	}
	nonce := rand.Int31n(nonceRange)
	if err := im.repo.Update(c, id, &account.Updater{
		Nonce:     &nonce,
		UpdatedAt: im.now(),
	}); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return 0, err
	}
	return nonce, nil
}

func (im *impl) makeMessageWithNonce(nonce int32) []byte {
	return []byte(fmt.Sprintf(im.signatureMsg, nonce))
}

func (im *impl) LinkWallet(c ctx.Ctx, id string, address domain.Address, signature string) (*account.Info, error) {
	c = ctx.WithValues(c, log.Fields{
		"id":      id,
		"address": address,
	})

	a, err := im.repo.FindOne(c, account.WithId(id))
	if err != nil {
		return nil, err
	}
	if a.Nonce == invalidNonce {
		return nil, account.ErrInvalidNonce
	}

	// a nonce is good for one attempt
	if err := im.repo.Update(c, id, &account.Updater{Nonce: ptr.Of(int32(invalidNonce))}); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return nil, err
	}

	ok, err := ethereum.VerifyPersonalSign(im.makeMessageWithNonce(a.Nonce), signature, string(address))
	if err != nil {
		c.WithField("err", err).Warn("VerifyPersonalSign failed")
		return nil, account.ErrInvalidSignature
	} else if !ok {
		return nil, account.ErrInvalidSignature
	}

	if err := im.repo.Update(c, id, &account.Updater{
		WalletAddress: ptr.Of(address.ToLower()),
		UpdatedAt:     im.now(),
	}); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return nil, err
	}
	a.WalletAddress = address.ToLower()
	return a.ToInfo(), nil
}
