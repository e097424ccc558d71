package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/repository"
)

func TestWorkshopService_Submit(t *testing.T) {
	ctx := context.Background()
	event := testEvent()

	repo := new(mockWorkshopRepo)
	repo.On("Create", ctx, *event, mock.MatchedBy(func(app domain.WorkshopApplication) bool {
		return app.InstagramHandle == "@dumplingclub" && app.Status == domain.StatusPending
	}), mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Kind == domain.NotifyWorkshopConfirmation && n.Data["workshopTitle"] == "Dumplings 101"
	})).Return(domain.WorkshopApplication{Envelope: domain.Envelope{ID: "26WS01KYV"}}, nil).Once()

	created, err := NewWorkshopService(repo).Submit(ctx, event, domain.WorkshopApplication{
		ContactPerson:   "Maria",
		Email:           "maria@example.com",
		InstagramHandle: "dumplingclub",
		WorkshopTitle:   "Dumplings 101",
	})
	require.NoError(t, err)
	assert.Equal(t, "26WS01KYV", created.ID)
	repo.AssertExpectations(t)

	_, err = NewWorkshopService(repo).Submit(ctx, nil, domain.WorkshopApplication{})
	assert.ErrorIs(t, err, ErrNoActiveEvent)
}

func TestWorkshopService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	event := testEvent()

	before := domain.WorkshopApplication{
		Envelope:      domain.Envelope{ID: "26WS01KYV", Status: domain.StatusPending},
		ContactPerson: "Maria",
		Email:         "maria@example.com",
		WorkshopTitle: "Dumplings 101",
	}

	var n *domain.Notification
	repo := new(mockWorkshopRepo)
	repo.On("UpdateStatus", ctx, before.ID, domain.StatusApproved, mock.Anything).
		Run(func(args mock.Arguments) {
			after := before
			after.Status = domain.StatusApproved
			after.Event = event
			var err error
			n, err = args.Get(3).(repository.WorkshopReview)(before, after)
			require.NoError(t, err)
		}).
		Return(domain.WorkshopApplication{Envelope: domain.Envelope{ID: before.ID, Status: domain.StatusApproved}}, nil).Once()

	_, err := NewWorkshopService(repo).UpdateStatus(ctx, domain.StatusChange{ApplicationID: before.ID, Status: domain.StatusApproved})
	require.NoError(t, err)

	require.NotNil(t, n)
	assert.Equal(t, domain.NotifyWorkshopAcceptance, n.Kind)
	assert.Equal(t, "Dumplings 101", n.Data["workshopTitle"])
	assert.Equal(t, "15–17 Apr 2026", n.Data["festivalDate"])
}

func TestNormalizeInstagram(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"chef", "@chef"},
		{"@chef", "@chef"},
		{"  chef ", "@chef"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeInstagram(tt.in))
		})
	}
}
