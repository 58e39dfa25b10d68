package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/chanlloyd12/backend-repo/internal/domain"
)

func TestNextEmployeeID(t *testing.T) {
	tests := []struct {
		last string
		want string
	}{
		{"", "EMP001"},
		{"EMP001", "EMP002"},
		{"EMP009", "EMP010"},
		{"EMP099", "EMP100"},
		{"EMP999", "EMP1000"},
		{"EMP1000", "EMP1001"},
	}

	for _, tt := range tests {
		got, err := domain.NextEmployeeID(tt.last)
		if err != nil {
			t.Fatalf("NextEmployeeID(%q): unexpected error %v", tt.last, err)
		}
		if got != tt.want {
			t.Errorf("NextEmployeeID(%q) = %q, want %q", tt.last, got, tt.want)
		}
	}
}

func TestNextEmployeeID_Malformed(t *testing.T) {
	for _, last := range []string{"EMP", "E001", "EMPabc", "001"} {
		if _, err := domain.NextEmployeeID(last); !errors.Is(err, domain.ErrInvalidEmployeeID) {
			t.Errorf("NextEmployeeID(%q): expected ErrInvalidEmployeeID, got %v", last, err)
		}
	}
}

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.Status
		to     domain.Status
		policy domain.RetransitionPolicy
		want   error
	}{
		{"approve pending", domain.StatusPending, domain.StatusApproved, domain.RetransitionForbid, nil},
		{"reject pending", domain.StatusPending, domain.StatusRejected, domain.RetransitionForbid, nil},
		{"pending stays pending", domain.StatusPending, domain.StatusPending, domain.RetransitionForbid, nil},
		{"repeat approval", domain.StatusApproved, domain.StatusApproved, domain.RetransitionForbid, nil},
		{"flip approved forbidden", domain.StatusApproved, domain.StatusRejected, domain.RetransitionForbid, domain.ErrWorkflowFinalized},
		{"reopen rejected forbidden", domain.StatusRejected, domain.StatusPending, domain.RetransitionForbid, domain.ErrWorkflowFinalized},
		{"flip approved allowed", domain.StatusApproved, domain.StatusRejected, domain.RetransitionAllow, nil},
		{"unknown status", domain.StatusPending, domain.Status("Done"), domain.RetransitionAllow, domain.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.CheckTransition(tt.from, tt.to, tt.policy)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMovesEmployee(t *testing.T) {
	if !domain.MovesEmployee(domain.StatusPending, domain.StatusApproved) {
		t.Error("approving a pending workflow must move the employee")
	}
	if !domain.MovesEmployee(domain.StatusRejected, domain.StatusApproved) {
		t.Error("approving a rejected workflow must move the employee")
	}
	if domain.MovesEmployee(domain.StatusApproved, domain.StatusApproved) {
		t.Error("re-approval must not move the employee again")
	}
	if domain.MovesEmployee(domain.StatusPending, domain.StatusRejected) {
		t.Error("rejection must not move the employee")
	}
}

func TestWorkflowLink(t *testing.T) {
	req := &domain.Request{ID: 7, EmployeeID: "EMP001"}
	wf := domain.NewRequestWorkflow(req)
	if link := wf.Link(); link.Kind != domain.LinkRequest || link.ID != 7 {
		t.Errorf("expected request link to 7, got %+v", link)
	}
	if wf.Type != domain.WorkflowRequestApproval || wf.Status != domain.StatusPending {
		t.Errorf("unexpected workflow %+v", wf)
	}

	tr := &domain.Transfer{ID: 3, EmployeeID: "EMP001", FromDept: "Engineering", ToDept: "Sales"}
	wf = domain.NewTransferWorkflow(tr)
	if link := wf.Link(); link.Kind != domain.LinkTransfer || link.ID != 3 {
		t.Errorf("expected transfer link to 3, got %+v", link)
	}
	if wf.Details != "Transfer request from Engineering to Sales" {
		t.Errorf("unexpected details %q", wf.Details)
	}

	broken := &domain.Workflow{RequestID: wf.TransferID, TransferID: wf.TransferID}
	if link := broken.Link(); link.Kind != domain.LinkNone {
		t.Errorf("expected no link for a workflow with both ids, got %+v", link)
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("create transfer: %w", domain.ErrPendingTransferExists)
	if got := domain.KindOf(wrapped); got != domain.KindConflict {
		t.Errorf("expected conflict, got %s", got)
	}
	if got := domain.ReasonOf(wrapped); got != "PendingTransferExists" {
		t.Errorf("expected PendingTransferExists, got %s", got)
	}
	if got := domain.KindOf(errors.New("disk full")); got != domain.KindInternal {
		t.Errorf("expected internal, got %s", got)
	}
	if got := domain.KindOf(nil); got != "" {
		t.Errorf("expected empty kind for nil, got %s", got)
	}
}
