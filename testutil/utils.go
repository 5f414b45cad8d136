package testutil

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/golang/mock/gomock"

	"github.com/lodestake/staked/testutil/mocks"
)

// PrepareMockedBank returns a bank mock that reports an effectively
// unlimited custody balance. Tests that exercise solvency failures override
// BalanceOf themselves.
func PrepareMockedBank(t *testing.T) *mocks.MockBank {
	ctl := gomock.NewController(t)
	mockBank := mocks.NewMockBank(ctl)

	mockBank.EXPECT().Close().Return(nil).AnyTimes()
	mockBank.EXPECT().BalanceOf(gomock.Any()).Return(sdkmath.NewInt(1_000_000_000_000), nil).AnyTimes()

	return mockBank
}
