package apierrors

const (
	MsgInvalidID          = "invalidID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgTaskSequenceFull   = "taskSequenceFull"
	MsgDuplicateTaskID    = "duplicateTaskID"
	MsgFailListTasks      = "failListTasks"
	MsgFailGetTask        = "failGetTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailAddTaskEvent   = "failAddTaskEvent"
	MsgFailTaskHistory    = "failTaskHistory"

	MsgInvalidInvoicePayload = "invalidInvoicePayload"
	MsgInvoiceNotFound       = "invoiceNotFound"
	MsgFailListInvoices      = "failListInvoices"
	MsgFailGetInvoice        = "failGetInvoice"
	MsgFailCreateInvoice     = "failCreateInvoice"
	MsgFailUpdateInvoice     = "failUpdateInvoice"
	MsgFailDeleteInvoice     = "failDeleteInvoice"

	MsgInvalidDirectoryPayload = "invalidDirectoryPayload"
	MsgCustomerNotFound        = "customerNotFound"
	MsgWorkerNotFound          = "workerNotFound"
	MsgTemplateNotFound        = "templateNotFound"
	MsgNameTaken               = "nameTaken"
	MsgFailDirectory           = "failDirectory"

	MsgInvalidPhotoPayload = "invalidPhotoPayload"
	MsgPhotoNotFound       = "photoNotFound"
	MsgFailPhotoStore      = "failPhotoStore"
)
