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

// Submission states.
const (
	StateSubmitted = "submitted"
	StateAccepted  = "accepted"
	StateConfirmed = "confirmed"
	StateRejected  = "rejected"
	StateWithdrawn = "withdrawn"
)

// Submission is a talk or workshop proposal.
type Submission struct {
	Code           string
	Title          string
	State          string
	SubmissionType string
	Track          string
	Abstract       string
	Speakers       []string // speaker codes
	IsFeatured     bool
	IsAnonymised   bool
}

// Speaker is a person presenting one or more submissions.
type Speaker struct {
	Code        string
	Name        string
	Biography   string
	Submissions []string // submission codes
}
