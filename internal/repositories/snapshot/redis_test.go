package snapshot_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/scapelab/gear-api/internal/catalogue"
	"github.com/scapelab/gear-api/internal/entities/osrs"
	"github.com/scapelab/gear-api/internal/errors"
	redismocks "github.com/scapelab/gear-api/internal/redis/mocks"
	"github.com/scapelab/gear-api/internal/repositories/snapshot"
	"github.com/scapelab/gear-api/internal/testutils/builders"
)

const (
	testVersion     = "snap_test123"
	testSnapshotKey = "catalogue:snapshot:snap_test123"
	testLatestKey   = "catalogue:snapshot:latest"
)

type RedisSnapshotTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *redismocks.MockClient
	repo       snapshot.Repository
	ctx        context.Context
}

func (s *RedisSnapshotTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = redismocks.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	repo, err := snapshot.NewRedis(&snapshot.RedisConfig{
		Client: s.mockClient,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisSnapshotTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisSnapshotTestSuite) TestNewRedis() {
	testCases := []struct {
		name    string
		config  *snapshot.RedisConfig
		wantErr bool
		errMsg  string
	}{
		{
			name: "success with valid config",
			config: &snapshot.RedisConfig{
				Client: s.mockClient,
			},
			wantErr: false,
		},
		{
			name:    "error with nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name: "error with nil client",
			config: &snapshot.RedisConfig{
				Client: nil,
			},
			wantErr: true,
			errMsg:  "client cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := snapshot.NewRedis(tc.config)

			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
			} else {
				s.NoError(err)
				s.NotNil(repo)
			}
		})
	}
}

func (s *RedisSnapshotTestSuite) TestGet() {
	testCases := []struct {
		name      string
		input     snapshot.GetInput
		setupMock func()
		wantErr   bool
		errMsg    string
		validate  func(output *snapshot.GetOutput)
	}{
		{
			name: "success retrieving snapshot by version",
			input: snapshot.GetInput{
				Version: testVersion,
			},
			setupMock: func() {
				data, _ := json.Marshal(s.createTestSnapshotData())

				s.mockClient.EXPECT().
					Get(s.ctx, testSnapshotKey).
					Return(redis.NewStringResult(string(data), nil))
			},
			wantErr: false,
			validate: func(output *snapshot.GetOutput) {
				s.Equal(testVersion, output.Snapshot.Version())
				s.Equal(2, output.Snapshot.Len())
				whip := output.Snapshot.ByID(1)
				s.Require().NotNil(whip)
				s.Equal("Abyssal whip", whip.Name)
			},
		},
		{
			name:  "empty version resolves the latest pointer",
			input: snapshot.GetInput{},
			setupMock: func() {
				data, _ := json.Marshal(s.createTestSnapshotData())

				s.mockClient.EXPECT().
					Get(s.ctx, testLatestKey).
					Return(redis.NewStringResult(testVersion, nil))
				s.mockClient.EXPECT().
					Get(s.ctx, testSnapshotKey).
					Return(redis.NewStringResult(string(data), nil))
			},
			wantErr: false,
			validate: func(output *snapshot.GetOutput) {
				s.Equal(testVersion, output.Snapshot.Version())
			},
		},
		{
			name:  "error when no snapshot was ever saved",
			input: snapshot.GetInput{},
			setupMock: func() {
				s.mockClient.EXPECT().
					Get(s.ctx, testLatestKey).
					Return(redis.NewStringResult("", redis.Nil))
			},
			wantErr: true,
			errMsg:  "no catalogue snapshot",
		},
		{
			name: "error when version not found",
			input: snapshot.GetInput{
				Version: "snap_missing",
			},
			setupMock: func() {
				s.mockClient.EXPECT().
					Get(s.ctx, "catalogue:snapshot:snap_missing").
					Return(redis.NewStringResult("", redis.Nil))
			},
			wantErr: true,
			errMsg:  "not found",
		},
		{
			name: "error on Redis failure",
			input: snapshot.GetInput{
				Version: testVersion,
			},
			setupMock: func() {
				s.mockClient.EXPECT().
					Get(s.ctx, testSnapshotKey).
					Return(redis.NewStringResult("", errors.Internal("redis error")))
			},
			wantErr: true,
			errMsg:  "failed to get snapshot",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			output, err := s.repo.Get(s.ctx, tc.input)

			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(output)
			} else {
				s.NoError(err)
				s.NotNil(output)
				tc.validate(output)
			}
		})
	}
}

func (s *RedisSnapshotTestSuite) TestSave() {
	testCases := []struct {
		name      string
		input     snapshot.SaveInput
		setupMock func()
		wantErr   bool
		errMsg    string
	}{
		{
			name: "success saving snapshot and advancing latest",
			input: snapshot.SaveInput{
				Snapshot: s.createTestSnapshot(),
			},
			setupMock: func() {
				cmd := redis.NewStatusCmd(s.ctx)
				cmd.SetErr(nil)
				s.mockClient.EXPECT().
					Set(s.ctx, testSnapshotKey, gomock.Any(), gomock.Any()).
					Return(cmd)
				s.mockClient.EXPECT().
					Set(s.ctx, testLatestKey, testVersion, gomock.Any()).
					Return(cmd)
			},
			wantErr: false,
		},
		{
			name:      "error when snapshot is nil",
			input:     snapshot.SaveInput{},
			setupMock: func() {},
			wantErr:   true,
			errMsg:    "snapshot cannot be nil",
		},
		{
			name: "error when snapshot version is empty",
			input: snapshot.SaveInput{
				Snapshot: catalogue.New("", time.Now(), nil),
			},
			setupMock: func() {},
			wantErr:   true,
			errMsg:    "version cannot be empty",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			output, err := s.repo.Save(s.ctx, tc.input)

			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(output)
			} else {
				s.NoError(err)
				s.NotNil(output)
				s.Equal(testVersion, output.Version)
			}
		})
	}
}

func (s *RedisSnapshotTestSuite) TestDelete() {
	testCases := []struct {
		name      string
		input     snapshot.DeleteInput
		setupMock func()
		wantErr   bool
		errMsg    string
	}{
		{
			name: "success deleting snapshot",
			input: snapshot.DeleteInput{
				Version: testVersion,
			},
			setupMock: func() {
				s.mockClient.EXPECT().
					Exists(s.ctx, testSnapshotKey).
					Return(redis.NewIntResult(1, nil))

				cmd := redis.NewIntCmd(s.ctx)
				cmd.SetErr(nil)
				s.mockClient.EXPECT().
					Del(s.ctx, testSnapshotKey).
					Return(cmd)
			},
			wantErr: false,
		},
		{
			name:      "error when version is empty",
			input:     snapshot.DeleteInput{},
			setupMock: func() {},
			wantErr:   true,
			errMsg:    "version cannot be empty",
		},
		{
			name: "error when snapshot not found",
			input: snapshot.DeleteInput{
				Version: "snap_missing",
			},
			setupMock: func() {
				s.mockClient.EXPECT().
					Exists(s.ctx, "catalogue:snapshot:snap_missing").
					Return(redis.NewIntResult(0, nil))
			},
			wantErr: true,
			errMsg:  "not found",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			output, err := s.repo.Delete(s.ctx, tc.input)

			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(output)
			} else {
				s.NoError(err)
				s.NotNil(output)
			}
		})
	}
}

// Helper methods

func (s *RedisSnapshotTestSuite) createTestItems() []osrs.Item {
	return []osrs.Item{
		builders.NewItemBuilder(1, "Abyssal whip", osrs.SlotWeapon).
			WithPrice(1_500_000).
			WithMeleeBonuses(0, 82, 0, 82).
			Build(),
		builders.NewItemBuilder(2, "Rune platebody", osrs.SlotBody).
			WithPrice(38_000).
			Build(),
	}
}

func (s *RedisSnapshotTestSuite) createTestSnapshot() *catalogue.Snapshot {
	return catalogue.New(testVersion, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), s.createTestItems())
}

func (s *RedisSnapshotTestSuite) createTestSnapshotData() map[string]interface{} {
	return map[string]interface{}{
		"version":    testVersion,
		"created_at": time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		"items":      s.createTestItems(),
	}
}

func TestRedisSnapshotTestSuite(t *testing.T) {
	suite.Run(t, new(RedisSnapshotTestSuite))
}
