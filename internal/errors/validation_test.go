package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/scapelab/gear-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("style")
	vb.Fieldf("budget", "must not be negative, got %d", -5)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	s.Require().NotNil(meta)
	fields, ok := meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Contains(fields, "style")
	s.Assert().Contains(fields, "budget")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	styles := []string{"melee", "ranged", "magic"}

	testCases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid melee", value: "melee", wantErr: false},
		{name: "valid magic", value: "magic", wantErr: false},
		{name: "unknown style", value: "necromancy", wantErr: true},
		{name: "empty style", value: "", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateEnum("style", tc.value, styles, vb)
			err := vb.Build()
			if tc.wantErr {
				s.Assert().Error(err)
			} else {
				s.Assert().NoError(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateNonNegative() {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("budget", 0, vb)
	errors.ValidateNonNegative("bank_value", 1_000_000, vb)
	s.Assert().NoError(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateNonNegative("budget", -1, vb)
	s.Assert().Error(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("account", "  ", vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "account")
}
