package service

import (
	"Conbini/dao"
	"Conbini/models"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newRewardsService(db *gorm.DB) *RewardsService {
	return &RewardsService{
		DB:             db,
		WalletDAO:      dao.NewWallet(db),
		RewardEventDAO: dao.NewRewardEvent(db),
	}
}

func walletRows(userID string, points int64, streak int, lastActivity interface{}) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "points", "streak", "last_activity"}).
		AddRow(1, userID, points, streak, lastActivity)
}

func TestStreakBonusFor(t *testing.T) {
	cases := []struct {
		streak int
		want   int64
	}{
		{1, 0},
		{2, 0},
		{3, 10},
		{4, 0},
		{7, 20},
		{8, 0},
		{14, 40},
		{15, 0},
		{100, 0},
	}
	for _, c := range cases {
		if got := streakBonusFor(c.streak); got != c.want {
			t.Errorf("streakBonusFor(%d) = %d, want %d", c.streak, got, c.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	base := time.Date(2025, 6, 10, 23, 50, 0, 0, loc)

	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", base, base.Add(5 * time.Minute), 0},
		{"across midnight", base, base.Add(15 * time.Minute), 1},
		{"exactly one day", base, base.AddDate(0, 0, 1), 1},
		{"two days", base, base.AddDate(0, 0, 2), 2},
		{"early vs late same day", truncateToDay(base), base, 0},
	}
	for _, c := range cases {
		if got := daysBetween(c.from, c.to); got != c.want {
			t.Errorf("%s: daysBetween = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestTruncateToDay(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	got := truncateToDay(time.Date(2025, 6, 10, 18, 30, 45, 123, loc))
	want := time.Date(2025, 6, 10, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("truncateToDay = %v, want %v", got, want)
	}
}

// 同一用户同一商品当天已有评价流水时不再发放，也不再产生任何写入
func TestRewardRatingSameDaySkipped(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newRewardsService(db)

	mock.ExpectQuery("SELECT count(.+)reward_events").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := svc.RewardRating(context.Background(), "u1", "4901330571481")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 核验奖励名额用满后静默跳过
func TestRewardVerificationCapReached(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newRewardsService(db)

	mock.ExpectQuery("SELECT count(.+)reward_events").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(VerificationRewardLimit)))

	err := svc.RewardVerification(context.Background(), "u1", "4901330571481")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 新增商品奖励：流水与余额累加在同一事务内完成，随后推进连续活跃状态
func TestRewardProductAdditionGrantsPoints(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newRewardsService(db)
	today := truncateToDay(time.Now())

	// grantPoints 事务
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT(.+)wallets").
		WillReturnRows(walletRows("u1", 100, 2, nil))
	mock.ExpectExec("INSERT INTO(.+)reward_events").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE(.+)wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// calculateStreakBonus：今天已活跃，不再写入
	mock.ExpectQuery("SELECT(.+)wallets").
		WillReturnRows(walletRows("u1", 120, 2, today))

	err := svc.RewardProductAddition(context.Background(), "u1", "4901330571481")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 昨天活跃过，今天再得分则连续天数 +1；命中档位时追加一条 streak_bonus 流水
func TestStreakAdvanceWithBonus(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newRewardsService(db)
	yesterday := truncateToDay(time.Now()).AddDate(0, 0, -1)

	// grantPoints 事务（评价奖励本体）
	mock.ExpectQuery("SELECT count(.+)reward_events").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT(.+)wallets").
		WillReturnRows(walletRows("u1", 50, 2, yesterday))
	mock.ExpectExec("INSERT INTO(.+)reward_events").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE(.+)wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// calculateStreakBonus：streak 2 -> 3，命中 10 分档位
	mock.ExpectQuery("SELECT(.+)wallets").
		WillReturnRows(walletRows("u1", 53, 2, yesterday))
	mock.ExpectExec("UPDATE(.+)wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// streak_bonus 流水事务
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT(.+)wallets").
		WillReturnRows(walletRows("u1", 53, 3, yesterday))
	mock.ExpectExec("INSERT INTO(.+)reward_events").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("UPDATE(.+)wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.RewardRating(context.Background(), "u1", "4901330571481")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 中断后归一，不发任何奖励
func TestStreakResetAfterGap(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newRewardsService(db)
	threeDaysAgo := truncateToDay(time.Now()).AddDate(0, 0, -3)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT(.+)wallets").
		WillReturnRows(walletRows("u1", 10, 7, threeDaysAgo))
	mock.ExpectExec("INSERT INTO(.+)reward_events").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE(.+)wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 归一，只更新状态
	mock.ExpectQuery("SELECT(.+)wallets").
		WillReturnRows(walletRows("u1", 30, 7, threeDaysAgo))
	mock.ExpectExec("UPDATE(.+)wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.RewardProductAddition(context.Background(), "u1", "4901330571481")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	// 归一后不应该出现 streak_bonus 档位
	if bonus := streakBonusFor(1); bonus != 0 {
		t.Errorf("reset streak should earn no bonus, got %d", bonus)
	}
}

func TestListRewardEventsLimitClamp(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newRewardsService(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "type", "points"}).
		AddRow(1, "u1", models.RewardTypeRating, 3)
	mock.ExpectQuery("SELECT(.+)reward_events").WillReturnRows(rows)

	events, err := svc.ListRewardEvents(context.Background(), "u1", -5)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
