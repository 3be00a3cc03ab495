package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type readerConfig struct {
	Action string `json:"DocumentReadAction,omitempty" validate:"required"`
}

type jobRequest struct {
	Text       *string        `json:"Text,omitempty" validate:"required,min=1,max=100"`
	RoleArn    *string        `json:"DataAccessRoleArn,omitempty" validate:"omitempty,iam_role_arn"`
	InputURI   *string        `json:"S3Uri,omitempty" validate:"omitempty,s3_uri"`
	Token      *string        `json:"ClientRequestToken,omitempty" validate:"omitempty,min=1,max=64,client_token"`
	Name       *string        `json:"JobName,omitempty" validate:"omitempty,max=256,resource_name"`
	Endpoint   *string        `json:"EndpointArn,omitempty" validate:"omitempty,comprehend_arn"`
	KmsKey     *string        `json:"VolumeKmsKeyId,omitempty" validate:"omitempty,max=2048,kms_key_id"`
	TextList   []string       `json:"TextList,omitempty" validate:"omitempty,min=1,max=25,dive,min=1"`
	Reader     *readerConfig  `json:"DocumentReaderConfig,omitempty"`
	ReaderList []readerConfig `json:"Readers,omitempty" validate:"omitempty,dive"`
}

func ptr[T any](v T) *T { return &v }

func TestStructValid(t *testing.T) {
	req := &jobRequest{
		Text:     ptr("I love it"),
		RoleArn:  ptr("arn:aws:iam::123456789012:role/comprehend-access"),
		InputURI: ptr("s3://my-bucket/input/"),
		Token:    ptr("4a6c2d0e-5b1f-4c8e-9d3a-1f2e3d4c5b6a"),
		Name:     ptr("nightly-sentiment"),
		Endpoint: ptr("arn:aws:comprehend:us-east-1:123456789012:document-classifier-endpoint/news"),
		KmsKey:   ptr("alias/comprehend"),
		TextList: []string{"a", "b"},
		Reader:   &readerConfig{Action: "TEXTRACT_DETECT_DOCUMENT_TEXT"},
	}
	require.NoError(t, Struct(req))
}

func TestStructNil(t *testing.T) {
	var req *jobRequest
	require.NoError(t, Struct(req))
	require.NoError(t, Struct(nil))
}

func TestStructMissingRequired(t *testing.T) {
	err := Struct(&jobRequest{})
	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "jobRequest", verr.Shape)
	require.Len(t, verr.Fields, 1)
	require.Equal(t, "Text", verr.Fields[0].Field)
	require.Equal(t, "required", verr.Fields[0].Tag)
	require.Contains(t, verr.Error(), "Text is a required field")
}

func TestStructViolations(t *testing.T) {
	tests := []struct {
		name  string
		req   *jobRequest
		field string
		tag   string
	}{
		{"empty text", &jobRequest{Text: ptr("")}, "Text", "min"},
		{"bad role", &jobRequest{Text: ptr("x"), RoleArn: ptr("arn:aws:s3:::bucket")}, "DataAccessRoleArn", "iam_role_arn"},
		{"bad uri", &jobRequest{Text: ptr("x"), InputURI: ptr("https://bucket/key")}, "S3Uri", "s3_uri"},
		{"bad token", &jobRequest{Text: ptr("x"), Token: ptr("no spaces allowed")}, "ClientRequestToken", "client_token"},
		{"bad name", &jobRequest{Text: ptr("x"), Name: ptr("-leading")}, "JobName", "resource_name"},
		{"bad endpoint", &jobRequest{Text: ptr("x"), Endpoint: ptr("arn:aws:iam::123456789012:role/x")}, "EndpointArn", "comprehend_arn"},
		{"non ascii key", &jobRequest{Text: ptr("x"), KmsKey: ptr("clé")}, "VolumeKmsKeyId", "kms_key_id"},
		{"empty list item", &jobRequest{Text: ptr("x"), TextList: []string{"ok", ""}}, "TextList[1]", "min"},
		{"nested", &jobRequest{Text: ptr("x"), Reader: &readerConfig{}}, "DocumentReaderConfig.DocumentReadAction", "required"},
		{"nested list", &jobRequest{Text: ptr("x"), ReaderList: []readerConfig{{Action: "A"}, {}}}, "Readers[1].DocumentReadAction", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.req)
			var verr *Error
			require.True(t, errors.As(err, &verr), "got %v", err)
			require.Len(t, verr.Fields, 1)
			require.Equal(t, tt.field, verr.Fields[0].Field)
			require.Equal(t, tt.tag, verr.Fields[0].Tag)
			require.NotEmpty(t, verr.Fields[0].Message)
		})
	}
}

func TestStructTooManyItems(t *testing.T) {
	list := make([]string, 26)
	for i := range list {
		list[i] = "doc"
	}
	err := Struct(&jobRequest{Text: ptr("x"), TextList: list})
	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "TextList", verr.Fields[0].Field)
	require.Equal(t, "TextList must be at most 25", verr.Fields[0].Message)
}
