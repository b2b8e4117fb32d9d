// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resources

import (
	"context"
	"fmt"

	vsrerrors "github.com/NVIDIA/serializer-registry/pkg/errors"
)

// SubmissionSerializer renders submissions. The representation is the same
// in every version.
type SubmissionSerializer struct{}

// SubmissionView is the public representation of a Submission.
type SubmissionView struct {
	Code           string   `json:"code" yaml:"code"`
	Title          string   `json:"title" yaml:"title"`
	State          string   `json:"state" yaml:"state"`
	SubmissionType string   `json:"submission_type" yaml:"submission_type"`
	Track          string   `json:"track,omitempty" yaml:"track,omitempty"`
	Abstract       string   `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Speakers       []string `json:"speakers" yaml:"speakers"`
	IsFeatured     bool     `json:"is_featured" yaml:"is_featured"`
}

// Serialize implements registry.Serializer. Speakers of anonymised
// submissions are withheld.
func (SubmissionSerializer) Serialize(_ context.Context, instance any) (any, error) {
	sub, err := as[Submission](instance)
	if err != nil {
		return nil, err
	}

	speakers := sub.Speakers
	if sub.IsAnonymised || speakers == nil {
		speakers = []string{}
	}
	return SubmissionView{
		Code:           sub.Code,
		Title:          sub.Title,
		State:          sub.State,
		SubmissionType: sub.SubmissionType,
		Track:          sub.Track,
		Abstract:       sub.Abstract,
		Speakers:       speakers,
		IsFeatured:     sub.IsFeatured,
	}, nil
}

// SpeakerSerializer renders speakers in the LEGACY version.
type SpeakerSerializer struct{}

// SpeakerView is the LEGACY representation of a Speaker.
type SpeakerView struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// Serialize implements registry.Serializer.
func (SpeakerSerializer) Serialize(_ context.Context, instance any) (any, error) {
	sp, err := as[Speaker](instance)
	if err != nil {
		return nil, err
	}
	return SpeakerView{Code: sp.Code, Name: sp.Name}, nil
}

// SpeakerPreviewSerializer renders speakers in the DEV_PREVIEW version,
// which adds the biography and submission codes.
type SpeakerPreviewSerializer struct{}

// SpeakerPreviewView is the DEV_PREVIEW representation of a Speaker.
type SpeakerPreviewView struct {
	Code        string   `json:"code" yaml:"code"`
	Name        string   `json:"name" yaml:"name"`
	Biography   string   `json:"biography" yaml:"biography"`
	Submissions []string `json:"submissions" yaml:"submissions"`
}

// Serialize implements registry.Serializer.
func (SpeakerPreviewSerializer) Serialize(_ context.Context, instance any) (any, error) {
	sp, err := as[Speaker](instance)
	if err != nil {
		return nil, err
	}
	subs := sp.Submissions
	if subs == nil {
		subs = []string{}
	}
	return SpeakerPreviewView{
		Code:        sp.Code,
		Name:        sp.Name,
		Biography:   sp.Biography,
		Submissions: subs,
	}, nil
}

// as accepts T or *T.
func as[T any](instance any) (T, error) {
	var zero T
	switch v := instance.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}
	return zero, vsrerrors.NewWithContext(vsrerrors.ErrCodeInternal,
		fmt.Sprintf("cannot serialize %T as %T", instance, zero),
		map[string]any{"type": fmt.Sprintf("%T", instance)})
}
