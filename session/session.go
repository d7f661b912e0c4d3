// Package session mô hình hoá luồng làm bài khảo sát: con trỏ câu hỏi
// tuần tự cho tới mục kết thúc. Trạng thái con trỏ (vị trí, các câu được
// đánh dấu) chỉ sống trong một phiên, không bao giờ được ghi xuống storage;
// phần ghi điểm và chốt phiếu do store đảm nhận.
package session

import (
	"errors"
	"sort"
)

type State int

const (
	NotStarted State = iota
	InProgress
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Finished:
		return "finished"
	}
	return "unknown"
}

var (
	ErrNgoaiPham      = errors.New("vị trí câu hỏi ngoài phạm vi phiếu")
	ErrChuaToiKetThuc = errors.New("chỉ chốt được khảo sát tại mục kết thúc")
	ErrDaKetThuc      = errors.New("khảo sát đã kết thúc")
)

// Cursor là con trỏ điều hướng trên danh sách câu trả lời của một phiếu.
// Mục cuối cùng (index total-1) là mục kết thúc.
type Cursor struct {
	index   int
	total   int
	state   State
	flagged map[int]bool
}

// New mở phiên làm bài mới trên một phiếu total mục (total >= 1).
func New(total int) *Cursor {
	return &Cursor{total: total, state: InProgress, flagged: map[int]bool{}}
}

// Resume mở lại phiên trên một phiếu đã tồn tại. Phiếu đã hoàn thành chỉ
// còn đọc; các đánh dấu cũ không được khôi phục vì không được lưu.
func Resume(total int, finished bool) *Cursor {
	c := New(total)
	if finished {
		c.state = Finished
		c.index = total - 1
	}
	return c
}

func (c *Cursor) State() State { return c.state }
func (c *Cursor) Index() int   { return c.index }
func (c *Cursor) Total() int   { return c.total }

// AtKetThuc cho biết con trỏ đang đứng ở mục kết thúc.
func (c *Cursor) AtKetThuc() bool {
	return c.index == c.total-1
}

func (c *Cursor) Next() error {
	if c.state == Finished {
		return ErrDaKetThuc
	}
	if c.index+1 >= c.total {
		return ErrNgoaiPham
	}
	c.index++
	return nil
}

func (c *Cursor) Prev() error {
	if c.state == Finished {
		return ErrDaKetThuc
	}
	if c.index == 0 {
		return ErrNgoaiPham
	}
	c.index--
	return nil
}

func (c *Cursor) JumpTo(i int) error {
	if c.state == Finished {
		return ErrDaKetThuc
	}
	if i < 0 || i >= c.total {
		return ErrNgoaiPham
	}
	c.index = i
	return nil
}

// ToggleFlag bật/tắt đánh dấu một câu để quay lại sau.
func (c *Cursor) ToggleFlag(i int) error {
	if i < 0 || i >= c.total {
		return ErrNgoaiPham
	}
	if c.flagged[i] {
		delete(c.flagged, i)
	} else {
		c.flagged[i] = true
	}
	return nil
}

// Flagged trả về các vị trí đã đánh dấu theo thứ tự tăng dần.
func (c *Cursor) Flagged() []int {
	out := make([]int, 0, len(c.flagged))
	for i := range c.flagged {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Finish chốt phiên: chỉ hợp lệ khi đang làm bài và đứng tại mục kết
// thúc. Gọi lần hai bị từ chối.
func (c *Cursor) Finish() error {
	if c.state == Finished {
		return ErrDaKetThuc
	}
	if !c.AtKetThuc() {
		return ErrChuaToiKetThuc
	}
	c.state = Finished
	return nil
}
