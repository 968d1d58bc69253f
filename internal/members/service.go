package members

import (
	"context"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
	"github.com/tathastu-fit/tathastu-erp/internal/shared"
)

// renewalDays is how far a renewal pushes the expiry from today.
const renewalDays = 30

// renewalExpiryLayout is the canonical expiry format written on renewal.
const renewalExpiryLayout = "02 Jan 2006"

// Body composition is not captured at the door yet; check-in samples
// carry these values so the trend chart keeps rendering until a scanner
// feed exists.
const (
	placeholderBodyFat    = 20.0
	placeholderMuscleMass = 35.0
)

// RepositoryPort abstracts registry persistence for the service.
type RepositoryPort interface {
	List(ctx context.Context) ([]Member, error)
	Get(ctx context.Context, id int64) (Member, error)
	Create(ctx context.Context, m Member) (int64, error)
	Delete(ctx context.Context, id int64) error
	MarkAttendance(ctx context.Context, id int64, weight *string) error
	SetRenewal(ctx context.Context, id int64, expiry string) error
	MarkNudged(ctx context.Context, days int, status Status) (int64, error)
}

// LedgerPort posts revenue to the finance module.
type LedgerPort interface {
	RecordRevenue(ctx context.Context, category string, amount float64) error
}

// ProgressPort appends biometric samples to a member's history.
type ProgressPort interface {
	Append(ctx context.Context, memberID int64, sample metrics.Sample) error
}

// NudgeQueue enqueues the retention background task.
type NudgeQueue interface {
	EnqueueRetentionNudge(ctx context.Context) error
}

// AuditPort records mutations.
type AuditPort interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// Service coordinates member operations.
type Service struct {
	repo              RepositoryPort
	ledger            LedgerPort
	progress          ProgressPort
	nudges            NudgeQueue
	audit             AuditPort
	now               func() time.Time
	fallbackPlanPrice float64
	printer           *message.Printer
}

// ServiceConfig groups optional settings.
type ServiceConfig struct {
	// FallbackPlanPrice is charged on renewal when the stored plan amount
	// is unreadable.
	FallbackPlanPrice float64
}

// NewService builds a Service.
func NewService(repo RepositoryPort, ledger LedgerPort, progress ProgressPort, nudges NudgeQueue, audit AuditPort, cfg ServiceConfig) *Service {
	return &Service{
		repo:              repo,
		ledger:            ledger,
		progress:          progress,
		nudges:            nudges,
		audit:             audit,
		now:               time.Now,
		fallbackPlanPrice: cfg.FallbackPlanPrice,
		printer:           message.NewPrinter(language.English),
	}
}

// WithNow overrides the service clock for testing.
func (s *Service) WithNow(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// List returns every member with subscription health computed against
// the current clock.
func (s *Service) List(ctx context.Context) ([]View, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	views := make([]View, 0, len(rows))
	for _, m := range rows {
		views = append(views, View{
			Member: m,
			Health: metrics.ClassifySubscription(m.SubExpiry, now),
		})
	}
	return views, nil
}

// Register onboards a new member. A readable, positive signup amount is
// booked to the revenue ledger; an unreadable amount registers the
// member anyway, since intake forms predate structured payments.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Member, error) {
	m := Member{
		Name:       strings.TrimSpace(input.Name),
		Mobile:     input.Mobile,
		Email:      input.Email,
		Weight:     input.Weight,
		Height:     input.Height,
		Address:    input.Address,
		PlanName:   input.PlanName,
		AmountPaid: input.AmountPaid,
		SubExpiry:  input.SubExpiry,
		Status:     StatusActive,
	}
	id, err := s.repo.Create(ctx, m)
	if err != nil {
		return Member{}, err
	}
	m.ID = id

	if amount, perr := parseAmount(input.AmountPaid); perr == nil && amount > 0 {
		if err := s.ledger.RecordRevenue(ctx, "Signup: "+m.Name, amount); err != nil {
			return Member{}, err
		}
	}

	s.recordAudit(ctx, "register", m.ID, map[string]any{"name": m.Name, "plan": m.PlanName})
	return m, nil
}

// Remove deletes a member from the registry.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.recordAudit(ctx, "remove", id, nil)
	return nil
}

// MarkAttendance checks a member in. When a weight reading comes with
// the check-in it updates the profile and extends the biometric series.
func (s *Service) MarkAttendance(ctx context.Context, id int64, weight *float64) error {
	var weightStr *string
	if weight != nil {
		formatted := strconv.FormatFloat(*weight, 'f', -1, 64)
		weightStr = &formatted
	}
	if err := s.repo.MarkAttendance(ctx, id, weightStr); err != nil {
		return err
	}
	if weight != nil {
		sample := metrics.Sample{
			Month:  s.now().Format("Jan"),
			Weight: *weight,
			Fat:    placeholderBodyFat,
			Muscle: placeholderMuscleMass,
		}
		if err := s.progress.Append(ctx, id, sample); err != nil {
			return err
		}
	}
	s.recordAudit(ctx, "check_in", id, nil)
	return nil
}

// Renew pushes the expiry renewalDays out from now and books the plan
// amount as renewal revenue.
func (s *Service) Renew(ctx context.Context, id int64) (RenewalReceipt, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return RenewalReceipt{}, err
	}

	expiry := s.now().AddDate(0, 0, renewalDays).Format(renewalExpiryLayout)
	if err := s.repo.SetRenewal(ctx, id, expiry); err != nil {
		return RenewalReceipt{}, err
	}
	m.SubExpiry = expiry

	amount, perr := parseAmount(m.AmountPaid)
	if perr != nil || amount <= 0 {
		amount = s.fallbackPlanPrice
	}
	if err := s.ledger.RecordRevenue(ctx, "Renewal: "+m.Name, amount); err != nil {
		return RenewalReceipt{}, err
	}

	s.recordAudit(ctx, "renew", id, map[string]any{"amount": amount})
	return RenewalReceipt{
		Member:  m,
		Amount:  amount,
		Message: s.printer.Sprintf("Access restored! ₹%v logged to revenue.", number.Decimal(amount)),
	}, nil
}

// TriggerRetention enqueues the background nudge run for absent members.
func (s *Service) TriggerRetention(ctx context.Context) error {
	return s.nudges.EnqueueRetentionNudge(ctx)
}

// MarkNudged tags every churn-risk member as messaged and returns the
// count. Executed by the retention worker, not the request path.
func (s *Service) MarkNudged(ctx context.Context) (int64, error) {
	return s.repo.MarkNudged(ctx, metrics.ChurnRiskDays, StatusNudgeSent)
}

// HeightCm returns the member's height in centimetres, zero when the
// stored value is unreadable.
func (s *Service) HeightCm(ctx context.Context, id int64) (float64, error) {
	return HeightDirectory{Repo: s.repo}.HeightCm(ctx, id)
}

// HeightDirectory resolves member heights straight from the repository,
// so analytics can compute BMI without depending on the full service.
type HeightDirectory struct {
	Repo RepositoryPort
}

// HeightCm parses the stored height, zero when unreadable.
func (d HeightDirectory) HeightCm(ctx context.Context, id int64) (float64, error) {
	m, err := d.Repo.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	h, perr := parseAmount(m.Height)
	if perr != nil {
		return 0, nil
	}
	return h, nil
}

func (s *Service) recordAudit(ctx context.Context, action string, id int64, meta map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		Action:   action,
		Entity:   "member",
		EntityID: strconv.FormatInt(id, 10),
		Meta:     meta,
	})
}

func parseAmount(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}
