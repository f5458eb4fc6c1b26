package checkout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	leadRepo "albarkah/database/repository/lead"
	"albarkah/models"
	"albarkah/services/checkout"
)

type countingNotifier struct {
	changes int
}

func (n *countingNotifier) LeadsChanged() { n.changes++ }

func newTestService(t *testing.T) (*checkout.DefaultSessionService, *leadRepo.MemoryLeadRepo, *countingNotifier) {
	t.Helper()
	repo := leadRepo.NewMemoryLeadRepo()
	notifier := &countingNotifier{}
	svc := &checkout.DefaultSessionService{
		Repo:     repo,
		Sessions: checkout.NewMemorySessionStore(),
		Notifier: notifier,
		WANumber: "6281553335534",
		Logger:   zap.NewNop(),
	}
	return svc, repo, notifier
}

func boolPtr(b bool) *bool { return &b }

func TestInitiate(t *testing.T) {
	svc, _, _ := newTestService(t)

	t.Run("defaults", func(t *testing.T) {
		session, err := svc.Initiate("1")
		require.NoError(t, err)

		assert.NotEmpty(t, session.SessionID)
		assert.Equal(t, models.StepIdentity, session.Step)
		assert.Equal(t, 1, session.Details.NumberOfPax)
		assert.Equal(t, models.PassportYes, session.Details.HasPassport)
		assert.True(t, session.Details.IsFirstTime)
		assert.Equal(t, models.RoomQuad, session.Details.RoomPreference)
		assert.Equal(t, int64(28500000), session.Total)
	})

	t.Run("unknown package", func(t *testing.T) {
		_, err := svc.Initiate("999")
		assert.ErrorIs(t, err, checkout.ErrUnknownPackage)
	})
}

func TestSubmitStep(t *testing.T) {
	t.Run("happy path through all steps", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		session, err := svc.Initiate("1")
		require.NoError(t, err)

		session, err = svc.SubmitStep(session.SessionID, models.StepIdentity, checkout.StepInput{
			FullName:       "  Ahmad Fauzi  ",
			WhatsappNumber: "6281234567890",
		})
		require.NoError(t, err)
		assert.Equal(t, models.StepDocuments, session.Step)
		assert.Equal(t, "Ahmad Fauzi", session.Details.FullName)

		session, err = svc.SubmitStep(session.SessionID, models.StepDocuments, checkout.StepInput{
			HasPassport: models.PassportNo,
			IsFirstTime: boolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, models.StepPreferences, session.Step)
		assert.Equal(t, models.PassportNo, session.Details.HasPassport)
		assert.False(t, session.Details.IsFirstTime)

		session, err = svc.SubmitStep(session.SessionID, models.StepPreferences, checkout.StepInput{
			RoomPreference: models.RoomDouble,
			NumberOfPax:    2,
			HealthNotes:    "Diabetes",
		})
		require.NoError(t, err)
		// The review step stays re-enterable.
		assert.Equal(t, models.StepPreferences, session.Step)
		assert.Equal(t, int64(67000000), session.Total)
	})

	t.Run("out of order step is rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		session, err := svc.Initiate("1")
		require.NoError(t, err)

		_, err = svc.SubmitStep(session.SessionID, models.StepPreferences, checkout.StepInput{
			NumberOfPax: 2,
		})
		assert.ErrorIs(t, err, checkout.ErrWrongStep)
	})

	t.Run("identity requires both fields", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		session, err := svc.Initiate("1")
		require.NoError(t, err)

		_, err = svc.SubmitStep(session.SessionID, models.StepIdentity, checkout.StepInput{
			FullName: "Ahmad",
		})
		assert.ErrorIs(t, err, checkout.ErrValidation)

		_, err = svc.SubmitStep(session.SessionID, models.StepIdentity, checkout.StepInput{
			FullName:       "   ",
			WhatsappNumber: "628123",
		})
		assert.ErrorIs(t, err, checkout.ErrValidation)
	})

	t.Run("invalid enums are rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		session, err := svc.Initiate("1")
		require.NoError(t, err)
		_, err = svc.SubmitStep(session.SessionID, models.StepIdentity, checkout.StepInput{
			FullName: "Ahmad", WhatsappNumber: "628123",
		})
		require.NoError(t, err)

		_, err = svc.SubmitStep(session.SessionID, models.StepDocuments, checkout.StepInput{
			HasPassport: models.PassportStatus("MAYBE"),
		})
		assert.ErrorIs(t, err, checkout.ErrValidation)
	})

	t.Run("missing session", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.SubmitStep("nope", models.StepIdentity, checkout.StepInput{})
		assert.ErrorIs(t, err, checkout.ErrSessionNotFound)
	})
}

func TestBack(t *testing.T) {
	svc, _, _ := newTestService(t)
	session, err := svc.Initiate("1")
	require.NoError(t, err)
	session, err = svc.SubmitStep(session.SessionID, models.StepIdentity, checkout.StepInput{
		FullName: "Ahmad", WhatsappNumber: "628123",
	})
	require.NoError(t, err)
	require.Equal(t, models.StepDocuments, session.Step)

	session, err = svc.Back(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepIdentity, session.Step)
	// Entered data survives going back.
	assert.Equal(t, "Ahmad", session.Details.FullName)

	// Step 1 is the floor.
	session, err = svc.Back(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepIdentity, session.Step)
}

func TestConfirm(t *testing.T) {
	runToReview := func(t *testing.T, svc *checkout.DefaultSessionService) string {
		t.Helper()
		session, err := svc.Initiate("1")
		require.NoError(t, err)
		_, err = svc.SubmitStep(session.SessionID, models.StepIdentity, checkout.StepInput{
			FullName: "Siti Aminah", WhatsappNumber: "6281234567890",
		})
		require.NoError(t, err)
		_, err = svc.SubmitStep(session.SessionID, models.StepDocuments, checkout.StepInput{
			HasPassport: models.PassportYes,
		})
		require.NoError(t, err)
		_, err = svc.SubmitStep(session.SessionID, models.StepPreferences, checkout.StepInput{
			RoomPreference: models.RoomDouble, NumberOfPax: 2,
		})
		require.NoError(t, err)
		return session.SessionID
	}

	t.Run("creates a lead with defaults", func(t *testing.T) {
		svc, repo, notifier := newTestService(t)
		sessionID := runToReview(t, svc)

		confirmation, err := svc.Confirm(sessionID)
		require.NoError(t, err)

		lead := confirmation.Lead
		assert.Regexp(t, `^ALB-[A-HJ-NP-Z2-9]{6}$`, lead.CheckoutCode)
		assert.Equal(t, "Umroh Reguler Syawal", lead.PackageName)
		assert.Equal(t, models.LeadPending, lead.Status)
		assert.Equal(t, models.PaymentUnpaid, lead.PaymentStatus)
		assert.Zero(t, lead.AmountPaid)
		assert.Equal(t, 1, notifier.changes)

		stored, err := repo.GetByCode(lead.CheckoutCode)
		require.NoError(t, err)
		assert.Equal(t, lead.ID, stored.ID)

		assert.True(t, strings.HasPrefix(confirmation.WhatsAppLink, "https://wa.me/6281553335534?text="))
		assert.Contains(t, confirmation.WhatsAppLink, "ALB-")

		// The session is gone after confirmation.
		_, err = svc.Confirm(sessionID)
		assert.ErrorIs(t, err, checkout.ErrSessionNotFound)
	})

	t.Run("requires the review step", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		session, err := svc.Initiate("1")
		require.NoError(t, err)

		_, err = svc.Confirm(session.SessionID)
		assert.ErrorIs(t, err, checkout.ErrWrongStep)
	})
}

// flakyRepo rejects the first create with a code collision, as a concurrent
// checkout would.
type flakyRepo struct {
	*leadRepo.MemoryLeadRepo
	rejected bool
}

func (r *flakyRepo) Create(lead *models.Lead) error {
	if !r.rejected {
		r.rejected = true
		return leadRepo.ErrDuplicateCode
	}
	return r.MemoryLeadRepo.Create(lead)
}

func TestConfirmRetriesOnCodeCollision(t *testing.T) {
	repo := &flakyRepo{MemoryLeadRepo: leadRepo.NewMemoryLeadRepo()}
	svc := &checkout.DefaultSessionService{
		Repo:     repo,
		Sessions: checkout.NewMemorySessionStore(),
		WANumber: "6281553335534",
		Logger:   zap.NewNop(),
	}

	session, err := svc.Initiate("2")
	require.NoError(t, err)
	_, err = svc.SubmitStep(session.SessionID, models.StepIdentity, checkout.StepInput{
		FullName: "Budi", WhatsappNumber: "628111",
	})
	require.NoError(t, err)
	_, err = svc.SubmitStep(session.SessionID, models.StepDocuments, checkout.StepInput{})
	require.NoError(t, err)
	_, err = svc.SubmitStep(session.SessionID, models.StepPreferences, checkout.StepInput{})
	require.NoError(t, err)

	confirmation, err := svc.Confirm(session.SessionID)
	require.NoError(t, err)
	assert.True(t, repo.rejected)
	assert.Regexp(t, `^ALB-`, confirmation.Lead.CheckoutCode)
}
