package loan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"bankloan-backend/internal/domain/contract"
	"bankloan-backend/internal/domain/errs"
	"bankloan-backend/internal/domain/filestore"
	"bankloan-backend/internal/domain/outbox"
	"bankloan-backend/internal/domain/uow"
	"bankloan-backend/internal/domain/user"
	"bankloan-backend/internal/infrastructure/metrics"
	"bankloan-backend/pkg/id"
	"bankloan-backend/pkg/vntime"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var reContractID = regexp.MustCompile(`^\d{8}$`)

type Usecase struct {
	contracts contract.Repository
	users     user.Repository
	uow       uow.UnitOfWork
	store     filestore.Store
	log       *zap.Logger

	maxIDAttempts int
	newID         func() string
	now           func() time.Time
}

func NewUsecase(contracts contract.Repository, users user.Repository, tx uow.UnitOfWork, store filestore.Store, maxIDAttempts int, log *zap.Logger) *Usecase {
	if maxIDAttempts < 1 {
		maxIDAttempts = 1
	}
	return &Usecase{
		contracts:     contracts,
		users:         users,
		uow:           tx,
		store:         store,
		log:           log,
		maxIDAttempts: maxIDAttempts,
		newID:         id.NewContractID,
		now:           time.Now,
	}
}

// GenerateID returns an 8-digit id that no contract uses at the time of the
// check. The unique index on contracts.contract_id still guards the insert.
func (u *Usecase) GenerateID(ctx context.Context) (string, error) {
	for i := 0; i < u.maxIDAttempts; i++ {
		cand := u.newID()
		exists, err := u.contracts.ExistsByContractID(ctx, cand)
		if err != nil {
			return "", err
		}
		if !exists {
			return cand, nil
		}
		metrics.ContractIDCollisions.Inc()
	}
	u.log.Warn("contract id space exhausted", zap.Int("attempts", u.maxIDAttempts))
	return "", contract.ErrIDExhausted
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ContractDTO, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	if _, err := u.users.GetByUserID(ctx, in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	now := u.now()
	name := fmt.Sprintf("%s_signature_%d.%s", in.UserID, now.UnixMilli(), in.Signature.Ext)
	sigPath, err := u.store.Save(ctx, filestore.CategoryDocuments, name, in.Signature.Bytes)
	if err != nil {
		u.log.Error("signature write failed", zap.String("user_id", in.UserID), zap.Error(err))
		return nil, err
	}

	c := &contract.Contract{
		ContractID:      in.ContractID,
		UserID:          in.UserID,
		LoanAmount:      in.LoanAmount,
		LoanTerm:        in.LoanTerm,
		BankName:        strings.TrimSpace(in.BankName),
		ContractContent: in.ContractContent,
		SignatureImage:  sigPath,
		Status:          contract.StatusPending,
		StatusUpdatedAt: now.UTC(),
		CreatedTime:     vntime.FormatTime(now),
		CreatedDate:     vntime.FormatDate(now),
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Contracts.Create(ctx, c); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return contract.ErrDuplicateID
			}
			return err
		}
		ev, err := newEvent(outbox.TopicContractCreated, c.ContractID, contractCreatedEvent{
			ContractID: c.ContractID,
			UserID:     c.UserID,
			LoanAmount: c.LoanAmount,
			LoanTerm:   c.LoanTerm,
			CreatedAt:  now.UTC(),
		})
		if err != nil {
			return err
		}
		return r.Outbox.Create(ctx, ev)
	})
	if err != nil {
		if errors.Is(err, contract.ErrDuplicateID) {
			u.log.Info("contract id taken at insert", zap.String("contract_id", c.ContractID))
		}
		if derr := u.store.Delete(ctx, sigPath); derr != nil {
			u.log.Warn("orphaned signature not removed", zap.String("path", sigPath), zap.Error(derr))
		}
		return nil, err
	}

	metrics.ContractsCreated.Inc()
	u.log.Info("contract created", zap.String("contract_id", c.ContractID), zap.String("user_id", c.UserID))
	return ToDTO(c), nil
}

// ListForUser returns the user's contracts, newest first.
func (u *Usecase) ListForUser(ctx context.Context, userID string) ([]ContractDTO, error) {
	list, err := u.contracts.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]ContractDTO, 0, len(list))
	for i := range list {
		out = append(out, *ToDTO(&list[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, contractID string) (*ContractDTO, error) {
	c, err := u.contracts.GetByContractID(ctx, contractID)
	if err != nil {
		return nil, notFound(err)
	}
	return ToDTO(c), nil
}

func validateCreate(in CreateInput) error {
	missing := func(field string) error {
		return errs.InvalidInput("Thiếu thông tin bắt buộc: " + field)
	}
	switch {
	case strings.TrimSpace(in.UserID) == "":
		return missing("userId")
	case strings.TrimSpace(in.ContractID) == "":
		return missing("contractId")
	case in.LoanAmount.IsZero():
		return missing("loanAmount")
	case in.LoanTerm == 0:
		return missing("loanTerm")
	case in.Signature == nil || len(in.Signature.Bytes) == 0:
		return missing("signatureImage")
	}
	if !reContractID.MatchString(in.ContractID) {
		return errs.InvalidInput("Mã hợp đồng phải gồm 8 chữ số")
	}
	if in.LoanAmount.IsNegative() {
		return errs.InvalidInput("Số tiền vay phải lớn hơn 0")
	}
	if in.LoanTerm < 0 {
		return errs.InvalidInput("Thời hạn vay phải lớn hơn 0")
	}
	return nil
}

func newEvent(topic, aggregateID string, payload any) (*outbox.Event, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &outbox.Event{EventID: id.NewULID(), Topic: topic, AggregateID: aggregateID, Payload: b}, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contract.ErrNotFound
	}
	return err
}
