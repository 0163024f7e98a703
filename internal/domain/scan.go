package domain

// ScanState is the single tagged state of a driver's ticket-scan flow.
// One linear flow: Idle -> Scanning -> Success | Cancelled.
type ScanState string

const (
	ScanIdle      ScanState = "IDLE"
	ScanScanning  ScanState = "SCANNING"
	ScanSuccess   ScanState = "SUCCESS"
	ScanCancelled ScanState = "CANCELLED"
)

// ScanSession tracks one scan attempt against a trip roster.
type ScanSession struct {
	State  ScanState
	Ticket string
	Result *RosterEntry
}

func NewScanSession() *ScanSession {
	return &ScanSession{State: ScanIdle}
}

// Start begins scanning a ticket. Only valid from Idle.
func (s *ScanSession) Start(ticket string) error {
	if s.State != ScanIdle {
		return ConflictError{Resource: "scan", Msg: "scan already in progress"}
	}
	if ticket == "" {
		return ValidationError{Field: "ticket", Msg: "ticket is required"}
	}
	s.State = ScanScanning
	s.Ticket = ticket
	return nil
}

// Resolve finishes the scan against the roster: a pending ticket is boarded
// and the session ends in Success; anything else cancels the session and the
// underlying error is returned.
func (s *ScanSession) Resolve(roster *Roster) error {
	if s.State != ScanScanning {
		return ConflictError{Resource: "scan", Msg: "no scan in progress"}
	}

	entry, err := roster.Lookup(s.Ticket)
	if err != nil {
		s.State = ScanCancelled
		return err
	}
	if err := roster.ConfirmBoarding(s.Ticket); err != nil {
		s.State = ScanCancelled
		return err
	}

	entry.Status = BoardingBoarded
	s.Result = &entry
	s.State = ScanSuccess
	return nil
}

// Cancel aborts an in-flight scan, e.g. when the driver dismisses the modal.
func (s *ScanSession) Cancel() error {
	if s.State != ScanScanning {
		return ConflictError{Resource: "scan", Msg: "no scan in progress"}
	}
	s.State = ScanCancelled
	return nil
}

// Reset returns a finished session to Idle for the next scan.
func (s *ScanSession) Reset() {
	s.State = ScanIdle
	s.Ticket = ""
	s.Result = nil
}
