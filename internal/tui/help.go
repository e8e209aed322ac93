package tui

var viewHelp = map[ViewMode]string{
	ViewBoard:    "↑↓←→/hjkl: navigate | [/]: move task | n: new | e: edit | a: assign | t: subtasks | d: delete | /: search | S/M: filter | 1-7/tab: views | q: quit",
	ViewTimeline: "↑↓: select | g/space: grab | [: resize start | ]: resize end | ←→: nudge | enter: drop | esc: cancel | e: edit | 1-7/tab: views | q: quit",
	ViewBacklog:  "↑↓: navigate | enter/space: expand | a: activate sprint | n: new sprint | 1-7/tab: views | q: quit",
	ViewRoadmap:  "↑↓: select | g/space: grab | [/]: resize | ←→: nudge | enter: drop | esc: cancel | n: new epic | e: edit | d: delete | q: quit",
	ViewTeam:     "↑↓: navigate | n: add member | d: remove | 1-7/tab: views | q: quit",
	ViewReports:  "e: export PDF | 1-7/tab: views | q: quit",
	ViewIssues:   "↑↓: navigate | /: search | s: status filter | e: edit | 1-7/tab: views | q: quit",
}

var modalHelp = map[ModalType]string{
	ModalTaskEdit:  "tab: next field | ctrl+t: status | ctrl+p: priority | enter: save | esc: cancel",
	ModalEpicEdit:  "tab: next field | enter: save | esc: cancel",
	ModalMemberAdd: "tab: next field | enter: save | esc: cancel",
	ModalAssign:    "↑↓: navigate | space: toggle | enter/esc: done",
	ModalSubtasks:  "↑↓: navigate | space: toggle | n: add | d: delete | esc: done",
	ModalConfirm:   "y/enter: confirm | n/esc: cancel",
}
