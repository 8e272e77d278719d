package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"
	"estate-transfer/pkg/apperror"
	"estate-transfer/pkg/tracing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TransferServiceImpl implements ports.TransferService.
//
// Every transition is one TransferRepository.Update: the record is locked,
// checked, mutated and written back atomically. Codes are issued and
// consumed inside that section; notifications and delisting happen after
// commit.
type TransferServiceImpl struct {
	repo      ports.TransferRepository
	codes     ports.CodeIssuer
	directory ports.DirectoryResolver
	registry  ports.PropertyRegistry
	selector  ports.SurveyorSelector
	notifier  ports.Notifier
	retry     *Retrier
	tracer    trace.Tracer
	log       zerolog.Logger
	now       func() time.Time
}

// NewTransferService creates a new transfer service.
func NewTransferService(
	repo ports.TransferRepository,
	codes ports.CodeIssuer,
	directory ports.DirectoryResolver,
	registry ports.PropertyRegistry,
	selector ports.SurveyorSelector,
	notifier ports.Notifier,
	retry *Retrier,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		repo:      repo,
		codes:     codes,
		directory: directory,
		registry:  registry,
		selector:  selector,
		notifier:  notifier,
		retry:     retry,
		tracer:    tracing.Tracer("estate-transfer/service"),
		log:       log,
		now:       time.Now,
	}
}

// ==================== Initiate ====================

// Initiate creates a transfer awaiting the seller's code and sends that code.
func (s *TransferServiceImpl) Initiate(ctx context.Context, req ports.InitiateRequest) (t *domain.Transfer, err error) {
	ctx, span := s.tracer.Start(ctx, "TransferService.Initiate",
		trace.WithAttributes(attribute.String("property_id", req.PropertyID)))
	defer endSpan(span, &err)

	propertyID := strings.TrimSpace(req.PropertyID)
	sellerRaw := strings.TrimSpace(req.SellerEmail)
	buyerRaw := strings.TrimSpace(req.BuyerEmail)
	sellerEmail := domain.NormalizeEmail(sellerRaw)
	buyerEmail := domain.NormalizeEmail(buyerRaw)

	if propertyID == "" || sellerEmail == "" || buyerEmail == "" {
		return nil, apperror.Validation("property_id, seller_email, buyer_email are required")
	}
	if sellerEmail == buyerEmail {
		return nil, apperror.Validation("Seller and buyer must be different parties")
	}

	// Directory records may carry mixed case; the resolver probes both forms.
	seller, err := s.resolveEmail(ctx, sellerRaw)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.ErrUnknownSeller()
	}

	var property *domain.Property
	err = s.retry.Do(ctx, func(ctx context.Context) (err error) {
		property, err = s.registry.GetProperty(ctx, propertyID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.ErrNotFound("Property")
	}
	if property.OwnerWallet == "" {
		return nil, apperror.ErrNotFound("Property owner information")
	}

	sellerWallet, err := s.sellerWallet(ctx, seller, property)
	if err != nil {
		return nil, err
	}
	if sellerWallet == "" {
		return nil, apperror.Validation("Seller wallet unavailable")
	}

	now := s.now().UTC()
	t = &domain.Transfer{
		ID:           uuid.New(),
		PropertyID:   propertyID,
		SellerEmail:  sellerEmail,
		BuyerEmail:   buyerEmail,
		SellerWallet: sellerWallet,
		BuyerWallet:  s.buyerWallet(ctx, buyerRaw),
		DocsLink:     s.docsLink(ctx, propertyID),
		Status:       domain.TransferStatusInitiated,
		CreatedAt:    now,
	}
	if err := s.advance(t, domain.TransferStatusPendingSellerOTP, now); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("transaction_id", t.ID.String()))

	// Code before row: a failed insert leaves only an orphan code.
	var code string
	err = s.retry.Do(ctx, func(ctx context.Context) (err error) {
		code, err = s.codes.Issue(ctx, t.ID, domain.RoleSeller)
		return err
	})
	if err != nil {
		s.log.Error().Err(err).Str("property_id", propertyID).Msg("seller code not issued")
		return nil, err
	}

	err = s.retry.Do(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, t, domain.RoleSeller, seller.Name, code)

	s.log.Info().
		Str("transaction_id", t.ID.String()).
		Str("property_id", propertyID).
		Str("status", string(t.Status)).
		Msg("transfer initiated")

	return t, nil
}

// sellerWallet prefers the seller's own wallet and falls back to the
// property owner wallet when that wallet belongs to a known identity.
func (s *TransferServiceImpl) sellerWallet(ctx context.Context, seller *domain.Identity, property *domain.Property) (string, error) {
	if seller.Wallet != "" {
		return seller.Wallet, nil
	}

	var owner *domain.Identity
	err := s.retry.Do(ctx, func(ctx context.Context) (err error) {
		owner, err = s.directory.ResolveByWallet(ctx, property.OwnerWallet)
		return err
	})
	if err != nil {
		return "", err
	}
	if owner == nil {
		return "", nil
	}
	return property.OwnerWallet, nil
}

func (s *TransferServiceImpl) buyerWallet(ctx context.Context, buyerEmail string) *string {
	buyer, err := s.directory.ResolveByEmail(ctx, buyerEmail)
	if err != nil {
		s.log.Warn().Err(err).Msg("buyer wallet lookup failed")
		return nil
	}
	if buyer == nil || buyer.Wallet == "" {
		return nil
	}
	return &buyer.Wallet
}

func (s *TransferServiceImpl) docsLink(ctx context.Context, propertyID string) *string {
	link, err := s.registry.SupportingDocs(ctx, propertyID)
	if err != nil {
		s.log.Warn().Err(err).Str("property_id", propertyID).Msg("supporting docs lookup failed")
		return nil
	}
	return link
}

// ==================== Code verification ====================

// VerifySellerCode consumes the seller code, issues the buyer code and
// delists the property.
func (s *TransferServiceImpl) VerifySellerCode(ctx context.Context, req ports.VerifyCodeRequest) (t *domain.Transfer, err error) {
	ctx, span := s.startTransferSpan(ctx, "TransferService.VerifySellerCode", req.TransferID)
	defer endSpan(span, &err)

	email := domain.NormalizeEmail(req.Email)
	if req.TransferID == uuid.Nil || email == "" || req.Code == "" {
		return nil, apperror.Validation("transaction_id, seller_email, otp are required")
	}

	var buyerCode string
	t, err = s.transitionWithCode(ctx, req.TransferID, domain.RoleSeller, req.Code, func(ctx context.Context, tr *domain.Transfer) error {
		if !tr.IsSeller(email) {
			return apperror.ErrUnauthorized("seller")
		}
		if tr.Status != domain.TransferStatusPendingSellerOTP {
			return apperror.ErrInvalidCode()
		}
		return nil
	}, func(ctx context.Context, tr *domain.Transfer) (err error) {
		buyerCode, err = s.codes.Issue(ctx, tr.ID, domain.RoleBuyer)
		if err != nil {
			return err
		}
		return s.advance(tr, domain.TransferStatusPendingBuyerOTP, s.now().UTC())
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("transaction_id", t.ID.String()).Str("status", string(t.Status)).Msg("seller code verified")

	s.notify(ctx, t, domain.RoleBuyer, s.partyName(ctx, t.BuyerEmail), buyerCode)

	err = s.retry.Do(ctx, func(ctx context.Context) error {
		return s.registry.Delist(ctx, t.PropertyID)
	})
	if err != nil {
		s.log.Warn().Err(err).
			Str("transaction_id", t.ID.String()).
			Str("property_id", t.PropertyID).
			Msg("seller verified but delisting failed")
	}

	return t, nil
}

// VerifyBuyerCode consumes the buyer code and binds a surveyor.
func (s *TransferServiceImpl) VerifyBuyerCode(ctx context.Context, req ports.VerifyCodeRequest) (t *domain.Transfer, err error) {
	ctx, span := s.startTransferSpan(ctx, "TransferService.VerifyBuyerCode", req.TransferID)
	defer endSpan(span, &err)

	email := domain.NormalizeEmail(req.Email)
	if req.TransferID == uuid.Nil || email == "" || req.Code == "" {
		return nil, apperror.Validation("transaction_id, buyer_email, otp are required")
	}

	var surveyor *domain.Identity
	t, err = s.transitionWithCode(ctx, req.TransferID, domain.RoleBuyer, req.Code, func(ctx context.Context, tr *domain.Transfer) (err error) {
		if !tr.IsBuyer(email) {
			return apperror.ErrUnauthorized("buyer")
		}
		if tr.Status != domain.TransferStatusPendingBuyerOTP {
			return apperror.ErrInvalidCode()
		}
		surveyor, err = s.selector.Select(ctx)
		if err != nil {
			return err
		}
		if surveyor == nil {
			return apperror.ErrNotFound("Surveyor")
		}
		return nil
	}, func(_ context.Context, tr *domain.Transfer) error {
		tr.SurveyorEmail = &surveyor.Email
		if surveyor.Name != "" {
			tr.SurveyorName = &surveyor.Name
		}
		return s.advance(tr, domain.TransferStatusPendingSurveyorApproval, s.now().UTC())
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transaction_id", t.ID.String()).
		Str("surveyor", *t.SurveyorEmail).
		Str("status", string(t.Status)).
		Msg("buyer code verified, surveyor assigned")

	return t, nil
}

// transitionWithCode runs one code-gated transition: check guards the
// locked record, the code is consumed, then apply mutates it. If anything
// after consumption fails, the code is put back so the party can retry.
func (s *TransferServiceImpl) transitionWithCode(
	ctx context.Context,
	id uuid.UUID,
	role domain.Role,
	code string,
	check func(ctx context.Context, tr *domain.Transfer) error,
	apply func(ctx context.Context, tr *domain.Transfer) error,
) (*domain.Transfer, error) {
	var t *domain.Transfer
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		consumed := false
		updated, err := s.update(ctx, id, func(tr *domain.Transfer) error {
			if err := check(ctx, tr); err != nil {
				return err
			}
			ok, err := s.codes.Verify(ctx, tr.ID, role, code)
			if err != nil {
				return err
			}
			if !ok {
				return apperror.ErrInvalidCode()
			}
			consumed = true
			return apply(ctx, tr)
		})
		if err != nil && consumed {
			s.restoreCode(ctx, id, role, code)
		}
		t = updated
		return err
	})
	return t, err
}

func (s *TransferServiceImpl) restoreCode(ctx context.Context, id uuid.UUID, role domain.Role, code string) {
	if err := s.codes.Restore(context.WithoutCancel(ctx), id, role, code); err != nil {
		s.log.Error().Err(err).
			Str("transaction_id", id.String()).
			Str("role", string(role)).
			Msg("consumed code could not be restored after failed transition")
	}
}

// ResendCode issues a fresh code to the party the transfer is waiting on,
// superseding the previous one.
func (s *TransferServiceImpl) ResendCode(ctx context.Context, id uuid.UUID, email string) (t *domain.Transfer, err error) {
	ctx, span := s.startTransferSpan(ctx, "TransferService.ResendCode", id)
	defer endSpan(span, &err)

	raw := strings.TrimSpace(email)
	if id == uuid.Nil || raw == "" {
		return nil, apperror.Validation("transaction_id and email are required")
	}

	// The record is read, not updated; a failed Put leaves the previous code live.
	t, err = s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	role, ok := t.Status.PendingCodeRole()
	if !ok {
		return nil, apperror.ErrInvalidState(string(t.Status))
	}
	if !domain.SameParty(t.PartyEmail(role), raw) {
		return nil, apperror.ErrUnauthorized(string(role))
	}

	var code string
	err = s.retry.Do(ctx, func(ctx context.Context) (err error) {
		code, err = s.codes.Issue(ctx, t.ID, role)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, t, role, s.partyName(ctx, raw), code)
	s.log.Info().Str("transaction_id", t.ID.String()).Str("role", string(role)).Msg("code reissued")

	return t, nil
}

// ==================== Approval & agreement ====================

// SurveyorApprove records the bound surveyor's approval and optional report.
func (s *TransferServiceImpl) SurveyorApprove(ctx context.Context, req ports.SurveyorApproveRequest) (t *domain.Transfer, err error) {
	ctx, span := s.startTransferSpan(ctx, "TransferService.SurveyorApprove", req.TransferID)
	defer endSpan(span, &err)

	email := domain.NormalizeEmail(req.SurveyorEmail)
	if req.TransferID == uuid.Nil || email == "" {
		return nil, apperror.Validation("transaction_id and surveyor_email are required")
	}

	err = s.retry.Do(ctx, func(ctx context.Context) (err error) {
		t, err = s.update(ctx, req.TransferID, func(tr *domain.Transfer) error {
			if tr.Status != domain.TransferStatusPendingSurveyorApproval {
				return apperror.ErrInvalidState(string(tr.Status))
			}
			if !tr.IsSurveyor(email) {
				return apperror.ErrUnauthorized("surveyor")
			}
			if req.ReportRef != nil {
				if ref := strings.TrimSpace(*req.ReportRef); ref != "" {
					tr.ReportRef = &ref
				}
			}
			return s.advance(tr, domain.TransferStatusPendingBuyerAgreement, s.now().UTC())
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("transaction_id", t.ID.String()).Str("status", string(t.Status)).Msg("surveyor approved")
	return t, nil
}

// BuyerAgree settles the buyer's decision. It never issues codes.
func (s *TransferServiceImpl) BuyerAgree(ctx context.Context, req ports.BuyerAgreeRequest) (t *domain.Transfer, err error) {
	ctx, span := s.startTransferSpan(ctx, "TransferService.BuyerAgree", req.TransferID)
	defer endSpan(span, &err)
	span.SetAttributes(attribute.Bool("agree", req.Agree))

	email := domain.NormalizeEmail(req.BuyerEmail)
	if req.TransferID == uuid.Nil || email == "" {
		return nil, apperror.Validation("transaction_id, buyer_email and agree are required")
	}

	next := domain.TransferStatusOnHold
	if req.Agree {
		next = domain.TransferStatusPendingAuthenticator
	}

	err = s.retry.Do(ctx, func(ctx context.Context) (err error) {
		t, err = s.update(ctx, req.TransferID, func(tr *domain.Transfer) error {
			if tr.Status != domain.TransferStatusPendingBuyerAgreement {
				return apperror.ErrInvalidState(string(tr.Status))
			}
			if !tr.IsBuyer(email) {
				return apperror.ErrUnauthorized("buyer")
			}
			return s.advance(tr, next, s.now().UTC())
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("transaction_id", t.ID.String()).Str("status", string(t.Status)).Msg("buyer decision recorded")
	return t, nil
}

// ==================== Queries ====================

// Get returns the transfer or NotFound.
func (s *TransferServiceImpl) Get(ctx context.Context, id uuid.UUID) (t *domain.Transfer, err error) {
	ctx, span := s.startTransferSpan(ctx, "TransferService.Get", id)
	defer endSpan(span, &err)

	err = s.retry.Do(ctx, func(ctx context.Context) (err error) {
		t, err = s.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.ErrNotFound("Transaction")
	}
	return t, nil
}

// ListForUser returns the transfers a party takes part in, newest first.
func (s *TransferServiceImpl) ListForUser(ctx context.Context, req ports.ListForUserRequest) (out []ports.TransferSummary, err error) {
	ctx, span := s.tracer.Start(ctx, "TransferService.ListForUser")
	defer endSpan(span, &err)

	email := domain.NormalizeEmail(req.Email)
	if email == "" {
		return nil, apperror.Validation("user_email is required")
	}
	if req.Role != nil && !req.Role.Valid() {
		return nil, apperror.Validation("role must be seller or buyer")
	}

	var transfers []domain.Transfer
	err = s.retry.Do(ctx, func(ctx context.Context) (err error) {
		transfers, err = s.repo.List(ctx, ports.TransferListParams{
			PartyEmail: email,
			Role:       req.Role,
			Status:     req.Status,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	out = make([]ports.TransferSummary, 0, len(transfers))
	for _, t := range transfers {
		role, _ := t.RoleFor(email)
		out = append(out, ports.TransferSummary{
			Transfer:    t,
			RoleForUser: role,
			Counterpart: t.Counterpart(role),
		})
	}
	return out, nil
}

// ListForSurveyor returns transfers awaiting the surveyor's approval.
func (s *TransferServiceImpl) ListForSurveyor(ctx context.Context, email string) (out []domain.Transfer, err error) {
	ctx, span := s.tracer.Start(ctx, "TransferService.ListForSurveyor")
	defer endSpan(span, &err)

	if _, err := s.SurveyorProfile(ctx, email); err != nil {
		return nil, err
	}

	pending := domain.TransferStatusPendingSurveyorApproval
	err = s.retry.Do(ctx, func(ctx context.Context) (err error) {
		out, err = s.repo.List(ctx, ports.TransferListParams{
			SurveyorEmail: domain.NormalizeEmail(email),
			Status:        &pending,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SurveyorProfile returns the directory identity of a surveyor.
func (s *TransferServiceImpl) SurveyorProfile(ctx context.Context, email string) (*domain.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperror.Validation("email is required")
	}

	var id *domain.Identity
	err := s.retry.Do(ctx, func(ctx context.Context) (err error) {
		id, err = s.directory.ResolveSurveyor(ctx, email)
		return err
	})
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, apperror.ErrUnauthorized("surveyor")
	}
	return id, nil
}

// ==================== Helpers ====================

// update wraps TransferRepository.Update, mapping a missing record to NotFound.
func (s *TransferServiceImpl) update(ctx context.Context, id uuid.UUID, fn func(*domain.Transfer) error) (*domain.Transfer, error) {
	t, err := s.repo.Update(ctx, id, fn)
	if errors.Is(err, ports.ErrTransferNotFound) {
		return nil, apperror.ErrNotFound("Transaction")
	}
	return t, err
}

// advance applies a transition; an illegal one is an internal error since
// every caller checks the status first.
func (s *TransferServiceImpl) advance(t *domain.Transfer, next domain.TransferStatus, now time.Time) error {
	if err := t.Advance(next, now); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}

func (s *TransferServiceImpl) resolveEmail(ctx context.Context, email string) (id *domain.Identity, err error) {
	err = s.retry.Do(ctx, func(ctx context.Context) (err error) {
		id, err = s.directory.ResolveByEmail(ctx, email)
		return err
	})
	return id, err
}

// partyName looks up a display name for email; failures yield "".
func (s *TransferServiceImpl) partyName(ctx context.Context, email string) string {
	id, err := s.directory.ResolveByEmail(ctx, email)
	if err != nil {
		s.log.Debug().Err(err).Msg("display name lookup failed")
		return ""
	}
	if id == nil {
		return ""
	}
	return id.Name
}

func (s *TransferServiceImpl) notify(ctx context.Context, t *domain.Transfer, role domain.Role, name, code string) {
	s.notifier.Send(ctx, domain.Notification{
		TransferID: t.ID,
		PropertyID: t.PropertyID,
		Role:       role,
		To:         t.PartyEmail(role),
		Name:       name,
		Code:       code,
	})
}

func (s *TransferServiceImpl) startTransferSpan(ctx context.Context, name string, id uuid.UUID) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("transaction_id", id.String())))
}

func endSpan(span trace.Span, err *error) {
	if *err != nil {
		span.RecordError(*err)
		span.SetStatus(codes.Error, (*err).Error())
	}
	span.End()
}
