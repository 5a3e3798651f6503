package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/npc-tracker/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "record not found",
			expected: "NOT_FOUND: record not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "document is not an object",
			expected: "INVALID_ARGUMENT: document is not an object",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("record not found").
		WithMeta("record_id", "npc_1").
		WithMeta("key", "gm_npc_library")

	s.Assert().Equal("npc_1", err.Meta["record_id"])
	s.Assert().Equal("gm_npc_library", err.Meta["key"])

	err = err.WithMetaMap(map[string]any{"attempt": 2})
	s.Assert().Equal(2, err.Meta["attempt"])
	s.Assert().Len(err.Meta, 3)
}

func (s *ErrorsTestSuite) TestWrap() {
	base := fmt.Errorf("disk full")
	err := errors.Wrap(base, "failed to save library")

	s.Assert().Equal(errors.CodeInternal, err.Code)
	s.Assert().Equal("INTERNAL: failed to save library: disk full", err.Error())
	s.Assert().ErrorIs(err, base)
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFound("key not found").WithMeta("key", "active_npc_id")
	err := errors.Wrapf(base, "failed to load %s", "active id")

	s.Assert().Equal(errors.CodeNotFound, err.Code)
	s.Assert().Equal("active_npc_id", err.Meta["key"])
	s.Assert().True(errors.IsNotFound(err))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := errors.Internal("bad payload").WithMeta("key", "gm_npc_library")
	err := errors.WrapWithCodef(base, errors.CodeDataLoss, "library %s unreadable", "gm_npc_library")

	s.Assert().Equal(errors.CodeDataLoss, err.Code)
	s.Assert().Equal("gm_npc_library", err.Meta["key"])
	s.Assert().ErrorIs(err, base)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name string
		err  *errors.Error
		code errors.Code
	}{
		{"not found", errors.NotFound("x"), errors.CodeNotFound},
		{"invalid argument", errors.InvalidArgument("x"), errors.CodeInvalidArgument},
		{"already exists", errors.AlreadyExists("x"), errors.CodeAlreadyExists},
		{"internal", errors.Internal("x"), errors.CodeInternal},
		{"unavailable", errors.Unavailable("x"), errors.CodeUnavailable},
		{"failed precondition", errors.FailedPrecondition("x"), errors.CodeFailedPrecondition},
		{"data loss", errors.DataLoss("x"), errors.CodeDataLoss},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.code, tc.err.Code)
			s.Assert().Equal("x", tc.err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	s.Assert().Equal("record npc_9 not found", errors.NotFoundf("record %s not found", "npc_9").Message)
	s.Assert().Equal("level must be >= 1", errors.InvalidArgumentf("level must be >= %d", 1).Message)
	s.Assert().Equal("cannot delete last of 1 records",
		errors.FailedPreconditionf("cannot delete last of %d records", 1).Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err := errors.NotFound("first")
	s.Assert().ErrorIs(err, errors.NotFound("second"))
	s.Assert().NotErrorIs(err, errors.Internal("second"))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	s.Assert().True(errors.IsNotFound(errors.NotFound("x")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("x")))
	s.Assert().True(errors.IsAlreadyExists(errors.AlreadyExists("x")))
	s.Assert().True(errors.IsInternal(errors.Internal("x")))
	s.Assert().True(errors.IsUnavailable(errors.Unavailable("x")))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("x")))
	s.Assert().True(errors.IsDataLoss(errors.DataLoss("x")))
	s.Assert().False(errors.IsNotFound(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	wrapped := fmt.Errorf("outer: %w", errors.Unavailable("redis down"))
	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(wrapped))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	s.Assert().Nil(errors.GetMeta(nil))
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("plain")))
	s.Assert().Equal("v", errors.GetMeta(errors.Internal("x").WithMeta("k", "v"))["k"])
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Assert().Equal("friendly", errors.GetMessage(errors.Internal("friendly")))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 2},
		{errors.CodeNotFound, 3},
		{errors.CodeAlreadyExists, 4},
		{errors.CodeFailedPrecondition, 4},
		{errors.CodeUnavailable, 5},
		{errors.CodeDataLoss, 6},
		{errors.CodeInternal, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Assert().Equal(tc.expected, tc.code.ExitCode())
		})
	}
}
