package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowError(t *testing.T) {
	cause := errors.New("unable to parse date: not-a-date")
	err := &RowError{Row: 2, Field: "date", Value: "not-a-date", Err: cause}

	assert.Equal(t, "row 2: cannot parse date: not-a-date", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Source: "alipay", Reason: "file is empty"}
	assert.Equal(t, "validation failed for alipay import: file is empty", err.Error())
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		Source:         "wechatpay",
		ExpectedFormat: "CSV with 交易时间 and 金额 columns",
		Msg:            "header row not found",
	}
	assert.Contains(t, err.Error(), "wechatpay")
	assert.Contains(t, err.Error(), "header row not found")
}
