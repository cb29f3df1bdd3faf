package banking

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func gamblingTransaction(id string, amount float64) Transaction {
	detailed := DetailedCategoryGambling

	return Transaction{
		ID:     id,
		Amount: amount,
		Category: Category{
			Primary:  new("ENTERTAINMENT"),
			Detailed: &detailed,
		},
	}
}

func TestClassifier_Classify_ResetsStreakAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	streaks := NewMockStreakResetter(ctrl)
	notifier := NewMockNotifier(ctrl)

	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()

	c := NewClassifier(streaks, notifier)
	c.now = func() time.Time { return now }

	matched := gamblingTransaction("txn_1", 50)
	other := Transaction{ID: "txn_2", Amount: 12, Category: Category{Primary: new("FOOD_AND_DRINK")}}

	streaks.EXPECT().ResetStreak(gomock.Any(), userID, now).Return(nil)
	notifier.EXPECT().NotifyRelapse(gomock.Any(), userID, 50.0, []Transaction{matched}).Return(nil)

	err := c.Classify(t.Context(), userID, []Transaction{other, matched})
	assert.NoError(t, err)
}

func TestClassifier_Classify_SumsMatchedValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	streaks := NewMockStreakResetter(ctrl)
	notifier := NewMockNotifier(ctrl)

	userID := uuid.New()
	c := NewClassifier(streaks, notifier)

	streaks.EXPECT().ResetStreak(gomock.Any(), userID, gomock.Any()).Return(nil)
	notifier.EXPECT().
		NotifyRelapse(gomock.Any(), userID, 75.5, gomock.Len(2)).
		Return(nil)

	err := c.Classify(t.Context(), userID, []Transaction{
		gamblingTransaction("txn_1", 50),
		gamblingTransaction("txn_2", 25.5),
	})
	assert.NoError(t, err)
}

func TestClassifier_Classify_NoGamblingIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	streaks := NewMockStreakResetter(ctrl)
	notifier := NewMockNotifier(ctrl)

	c := NewClassifier(streaks, notifier)

	err := c.Classify(t.Context(), uuid.New(), []Transaction{
		{ID: "txn_1", Category: Category{Primary: new("TRANSPORTATION")}},
		{ID: "txn_2"},
	})
	assert.NoError(t, err)
}

func TestClassifier_Classify_NotifierFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	streaks := NewMockStreakResetter(ctrl)
	notifier := NewMockNotifier(ctrl)

	userID := uuid.New()
	c := NewClassifier(streaks, notifier)

	streaks.EXPECT().ResetStreak(gomock.Any(), userID, gomock.Any()).Return(nil)
	notifier.EXPECT().
		NotifyRelapse(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return(errors.New("store down"))

	err := c.Classify(t.Context(), userID, []Transaction{gamblingTransaction("txn_1", 10)})
	assert.Error(t, err)
}
