package jules

import (
	"fmt"
	"time"
)

// SessionState is the lifecycle state of a session. The server owns the
// state machine; clients only observe it.
type SessionState string

// Session states.
const (
	StateUnspecified          SessionState = "STATE_UNSPECIFIED"
	StateQueued               SessionState = "QUEUED"
	StatePlanning             SessionState = "PLANNING"
	StateAwaitingPlanApproval SessionState = "AWAITING_PLAN_APPROVAL"
	StateAwaitingUserFeedback SessionState = "AWAITING_USER_FEEDBACK"
	StateInProgress           SessionState = "IN_PROGRESS"
	StatePaused               SessionState = "PAUSED"
	StateFailed               SessionState = "FAILED"
	StateCompleted            SessionState = "COMPLETED"
)

// AutomationMode controls whether certain actions are performed
// automatically during a session.
type AutomationMode string

// Automation modes.
const (
	AutomationModeUnspecified  AutomationMode = "AUTOMATION_MODE_UNSPECIFIED"
	AutomationModeAutoCreatePR AutomationMode = "AUTO_CREATE_PR"
)

// Session is a contiguous unit of delegated coding work. To create one, set
// Prompt and SourceContext; everything marked output-only is filled by the
// server and treated as a hint if set on input.
type Session struct {
	// Name is the full resource name (sessions/{session}). Output only.
	Name string `json:"name,omitempty"`

	// ID is the session ID. Output only.
	ID string `json:"id,omitempty"`

	// Prompt describes the coding task.
	Prompt string `json:"prompt"`

	// SourceContext selects the repository and branch to work on.
	SourceContext SourceContext `json:"sourceContext"`

	// Title is an optional display title.
	Title string `json:"title,omitempty"`

	// RequirePlanApproval makes the agent wait for ApprovePlan before
	// starting work.
	RequirePlanApproval *bool `json:"requirePlanApproval,omitempty"`

	// AutomationMode controls automatic actions (e.g. PR creation).
	AutomationMode AutomationMode `json:"automationMode,omitempty"`

	// CreateTime is when the session was created. Output only.
	CreateTime *time.Time `json:"createTime,omitempty"`

	// UpdateTime is when the session was last updated. Output only.
	UpdateTime *time.Time `json:"updateTime,omitempty"`

	// State is the current lifecycle state. Output only.
	State SessionState `json:"state,omitempty"`

	// URL links to the session in the web app. Output only.
	URL string `json:"url,omitempty"`

	// Outputs are artifacts produced by the session. Output only.
	Outputs []SessionOutput `json:"outputs,omitempty"`
}

// Validate checks that a server-returned session carries its identity.
// A success response missing these is a decode failure, not a usable value.
func (s *Session) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("session missing name")
	}
	return nil
}

// SourceContext selects a source for a session.
type SourceContext struct {
	// Source is the source resource name (sources/{source}).
	Source string `json:"source"`

	// GitHubRepoContext holds GitHub-specific settings.
	GitHubRepoContext *GitHubRepoContext `json:"githubRepoContext,omitempty"`
}

// GitHubRepoContext is the GitHub-specific part of a source context.
type GitHubRepoContext struct {
	// StartingBranch is the branch the session starts from.
	StartingBranch string `json:"startingBranch"`
}

// SessionOutput is an output produced by a session.
type SessionOutput struct {
	// PullRequest is a pull request created by the session.
	PullRequest *PullRequest `json:"pullRequest,omitempty"`
}

// PullRequest describes a pull request the agent opened.
type PullRequest struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Activity is a timestamped event within a session: messages, plan
// generation, progress updates, completion. Exactly one of the event
// pointers is set per activity.
type Activity struct {
	// Name is the full resource name (sessions/{session}/activities/{activity}).
	Name string `json:"name"`

	// ID is the activity ID.
	ID string `json:"id"`

	// Description describes this activity.
	Description string `json:"description,omitempty"`

	// CreateTime is when the activity occurred.
	CreateTime time.Time `json:"createTime"`

	// Originator is who produced the activity (user, agent, or system).
	Originator string `json:"originator,omitempty"`

	// AgentMessaged is set when the agent posted a message.
	AgentMessaged *AgentMessaged `json:"agentMessaged,omitempty"`

	// UserMessaged is set when the user posted a message.
	UserMessaged *UserMessaged `json:"userMessaged,omitempty"`

	// PlanGenerated is set when the agent produced a plan.
	PlanGenerated *PlanGenerated `json:"planGenerated,omitempty"`

	// PlanApproved is set when a plan was approved.
	PlanApproved *PlanApproved `json:"planApproved,omitempty"`

	// ProgressUpdated is set on progress updates.
	ProgressUpdated *ProgressUpdated `json:"progressUpdated,omitempty"`

	// SessionCompleted is set when the session finished successfully.
	SessionCompleted map[string]any `json:"sessionCompleted,omitempty"`

	// SessionFailed is set when the session failed.
	SessionFailed *SessionFailed `json:"sessionFailed,omitempty"`

	// Artifacts produced by this activity.
	Artifacts []Artifact `json:"artifacts,omitempty"`
}

// Validate checks that a server-returned activity carries its identity.
func (a *Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("activity missing name")
	}
	return nil
}

// AgentMessaged is a message from the agent.
type AgentMessaged struct {
	AgentMessage string `json:"agentMessage"`
}

// UserMessaged is a message from the user.
type UserMessaged struct {
	UserMessage string `json:"userMessage"`
}

// PlanGenerated carries a newly generated plan.
type PlanGenerated struct {
	Plan Plan `json:"plan"`
}

// Plan is an ordered set of steps for completing the task.
type Plan struct {
	// ID is unique within the session.
	ID string `json:"id"`

	// Steps are the plan steps in order.
	Steps []PlanStep `json:"steps"`

	// CreateTime is when the plan was created.
	CreateTime time.Time `json:"createTime"`
}

// PlanStep is one step of a plan.
type PlanStep struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// Index is the 0-based position of this step.
	Index int `json:"index"`
}

// PlanApproved records approval of a plan.
type PlanApproved struct {
	PlanID string `json:"planId"`
}

// ProgressUpdated is a progress report from the agent.
type ProgressUpdated struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// SessionFailed records why a session failed.
type SessionFailed struct {
	Reason string `json:"reason"`
}

// Artifact is a work product attached to an activity. At most one of the
// fields is set.
type Artifact struct {
	// ChangeSet is a set of code changes.
	ChangeSet *ChangeSet `json:"changeSet,omitempty"`

	// Media is an image, video, or other media file.
	Media *Media `json:"media,omitempty"`

	// BashOutput is the output of a shell command.
	BashOutput *BashOutput `json:"bashOutput,omitempty"`
}

// ChangeSet is a set of code changes against a source.
type ChangeSet struct {
	// Source is the source the changes apply to.
	Source string `json:"source"`

	// GitPatch holds the changes in git patch format.
	GitPatch *GitPatch `json:"gitPatch,omitempty"`
}

// GitPatch is a code change in unified diff format.
type GitPatch struct {
	// UnidiffPatch is the patch text.
	UnidiffPatch string `json:"unidiffPatch"`

	// BaseCommitID is the commit the patch applies to.
	BaseCommitID string `json:"baseCommitId"`

	// SuggestedCommitMessage is the agent's suggested commit message.
	SuggestedCommitMessage string `json:"suggestedCommitMessage,omitempty"`
}

// Media is a base64-encoded media artifact.
type Media struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// BashOutput is the captured output of a shell command.
type BashOutput struct {
	Command  string `json:"command"`
	Output   string `json:"output"`
	ExitCode int    `json:"exitCode"`
}

// Source is a connected repository that sessions can work on.
type Source struct {
	// Name is the full resource name (sources/{source}).
	Name string `json:"name"`

	// ID is the source ID.
	ID string `json:"id"`

	// GitHubRepo holds GitHub repository details.
	GitHubRepo *GitHubRepo `json:"githubRepo,omitempty"`
}

// Validate checks that a server-returned source carries its identity.
func (s *Source) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("source missing name")
	}
	return nil
}

// GitHubRepo describes a GitHub repository.
type GitHubRepo struct {
	Owner     string `json:"owner"`
	Repo      string `json:"repo"`
	IsPrivate bool   `json:"isPrivate"`

	// DefaultBranch is the repository's default branch.
	DefaultBranch *GitHubBranch `json:"defaultBranch,omitempty"`

	// Branches are the branches available for starting sessions.
	Branches []GitHubBranch `json:"branches,omitempty"`
}

// GitHubBranch is a branch of a GitHub repository.
type GitHubBranch struct {
	DisplayName string `json:"displayName"`
}

// ListSessionsResponse is one page of sessions.
type ListSessionsResponse struct {
	// Sessions are the sessions in this page, in server order.
	Sessions []Session `json:"sessions"`

	// NextPageToken fetches the next page. Empty means this is the last page.
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// ListActivitiesResponse is one page of activities.
type ListActivitiesResponse struct {
	Activities    []Activity `json:"activities"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

// ListSourcesResponse is one page of sources.
type ListSourcesResponse struct {
	Sources       []Source `json:"sources"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

// sendMessageRequest is the body for the :sendMessage custom method.
type sendMessageRequest struct {
	Prompt string `json:"prompt"`
}

// approvePlanRequest is the (empty) body for the :approvePlan custom method.
type approvePlanRequest struct{}

// empty decodes responses that carry no payload.
type empty struct{}
