package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positiveResult() *DetectSentimentResult {
	return new(DetectSentimentResult).
		SetSentiment(SentimentTypePositive).
		SetSentimentScore(new(SentimentScore).
			SetPositive(0.97).
			SetNegative(0.01).
			SetNeutral(0.01).
			SetMixed(0.01))
}

func TestDetectSentimentResult(t *testing.T) {
	r := positiveResult()

	require.Equal(t, SentimentTypePositive, r.GetSentiment())
	require.Equal(t, float32(0.97), r.GetSentimentScore().GetPositive())
	require.Equal(t, float32(0.01), r.GetSentimentScore().GetMixed())

	s := r.String()
	require.Contains(t, s, "Sentiment: POSITIVE")
	require.Contains(t, s, "SentimentScore:")

	other := positiveResult()
	require.True(t, r.Equal(other))
	require.True(t, other.Equal(r))
	require.Equal(t, r.Hash(), other.Hash())
}

func TestGettersOnAbsentFields(t *testing.T) {
	var nilShape *DetectSentimentResult
	require.Equal(t, SentimentType(""), nilShape.GetSentiment())
	require.Nil(t, nilShape.GetSentimentScore())
	require.Equal(t, float32(0), nilShape.GetSentimentScore().GetPositive())

	e := &Entity{}
	require.Equal(t, "", e.GetText())
	require.Equal(t, int32(0), e.GetBeginOffset())
	require.Nil(t, e.Text)

	props := &SentimentDetectionJobProperties{}
	require.True(t, props.GetSubmitTime().IsZero())
}

func TestListSetterCopies(t *testing.T) {
	texts := []string{"first", "second"}
	req := new(BatchDetectSentimentRequest).SetTextList(texts)

	texts[0] = "changed"
	require.Equal(t, []string{"first", "second"}, req.GetTextList())

	got := req.GetTextList()
	got[1] = "through getter"
	require.Equal(t, "through getter", req.GetTextList()[1], "getter returns the stored slice")
}

func TestListSetterNilClears(t *testing.T) {
	req := new(BatchDetectSentimentRequest).SetTextList([]string{"a"})
	require.Same(t, req, req.SetTextList(nil))
	require.Nil(t, req.TextList)

	req.SetTextList([]string{})
	require.NotNil(t, req.TextList)
	require.Empty(t, req.TextList)
	require.False(t, req.Equal(new(BatchDetectSentimentRequest)), "empty list is distinct from absent")
}

func TestAppend(t *testing.T) {
	req := &TagResourceRequest{}
	require.Same(t, req, req.AppendTags(*new(Tag).SetKey("team").SetValue("nlp")))
	req.AppendTags(*new(Tag).SetKey("env"), *new(Tag).SetKey("tier"))

	require.Len(t, req.Tags, 3)
	require.Equal(t, "team", req.Tags[0].GetKey())
	require.Equal(t, "tier", req.Tags[2].GetKey())
}

func TestSettersReturnReceiver(t *testing.T) {
	req := &DetectSentimentRequest{}
	require.Same(t, req, req.SetText("x"))
	require.Same(t, req, req.SetLanguageCode(LanguageCodeEn))
}

func TestEqualAndHash(t *testing.T) {
	base := func() *Entity {
		return new(Entity).
			SetScore(0.99).
			SetType(EntityTypePerson).
			SetText("Ada").
			SetBeginOffset(0).
			SetEndOffset(3)
	}

	require.True(t, base().Equal(base()))
	require.Equal(t, base().Hash(), base().Hash())

	mutations := map[string]func(*Entity){
		"Score":       func(e *Entity) { e.SetScore(0.5) },
		"Type":        func(e *Entity) { e.SetType(EntityTypeLocation) },
		"Text":        func(e *Entity) { e.SetText("Grace") },
		"BeginOffset": func(e *Entity) { e.BeginOffset = nil },
		"EndOffset":   func(e *Entity) { e.SetEndOffset(4) },
	}
	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			e := base()
			mutate(e)
			assert.False(t, base().Equal(e))
			assert.False(t, e.Equal(base()))
		})
	}

	var a, b *Entity
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(base()))
	require.False(t, base().Equal(nil))
}

func TestEqualTimestampsByInstant(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := new(SentimentDetectionJobProperties).SetSubmitTime(at)
	b := new(SentimentDetectionJobProperties).SetSubmitTime(at.In(time.FixedZone("CEST", 2*3600)))

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestStringListsOnlySetFields(t *testing.T) {
	e := new(Entity).SetText("Seattle").SetType(EntityTypeLocation)
	require.Equal(t, "{Type: LOCATION, Text: Seattle}", e.String())
	require.Equal(t, "{}", Entity{}.String())

	req := new(BatchDetectSentimentRequest).SetTextList([]string{"a", "b"})
	require.Equal(t, "{TextList: [a, b]}", req.String())
	require.False(t, strings.Contains(req.String(), "LanguageCode"))
}

func TestRawEnumEqualsConstant(t *testing.T) {
	a := new(DetectSentimentRequest).SetLanguageCode(LanguageCodeEn)
	b := new(DetectSentimentRequest).SetLanguageCode(LanguageCode("en"))
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestEnums(t *testing.T) {
	require.Equal(t, []SentimentType{"POSITIVE", "NEGATIVE", "NEUTRAL", "MIXED"}, SentimentType("").Values())
	require.True(t, SentimentTypeMixed.IsKnown())
	require.False(t, SentimentType("SARCASTIC").IsKnown())
	require.Equal(t, LanguageCode("zh-TW"), LanguageCodeZhTw)
	require.Contains(t, JobStatus("").Values(), JobStatusStopRequested)
}

func TestValidate(t *testing.T) {
	require.NoError(t, new(DetectSentimentRequest).SetText("I love it").SetLanguageCode(LanguageCodeEn).Validate())
	require.Error(t, new(DetectSentimentRequest).SetText("I love it").Validate())

	tags := new(TagResourceRequest).
		SetResourceArn("arn:aws:comprehend:us-east-1:123456789012:document-classifier/news").
		AppendTags(Tag{})
	require.ErrorContains(t, tags.Validate(), "Key")
}
