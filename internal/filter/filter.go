// Package filter compiles user filter expressions into model predicates.
package filter

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/Tiliavir/intrack/internal/model"
)

// DefaultCacheSize bounds the number of compiled programs kept in memory.
const DefaultCacheSize = 128

// Env is what an expression sees for one internship.
type Env struct {
	Company     string `expr:"company"`
	Location    string `expr:"location"`
	Description string `expr:"description"`
	Role        string `expr:"role"`
	Contact     string `expr:"contact"`
	Email       string `expr:"email"`
	Phone       string `expr:"phone"`
	Status      string `expr:"status"`
	Remark      string `expr:"remark"`
	Tasks       int    `expr:"tasks"`
	// PendingDeadlines counts deadlines today or later.
	PendingDeadlines int `expr:"pending_deadlines"`
	// NextDeadline is the number of days until the nearest pending
	// deadline, or -1 when there is none.
	NextDeadline int `expr:"next_deadline"`
}

// NewEnv builds the expression environment for in as seen at now.
func NewEnv(in model.Internship, now time.Time) Env {
	env := Env{
		Company:      in.CompanyName,
		Location:     in.Location,
		Description:  in.Description,
		Role:         in.Role,
		Contact:      in.ContactName,
		Email:        in.ContactEmail,
		Phone:        in.ContactNumber,
		Status:       string(in.ApplicationStatus),
		Remark:       in.Remark,
		Tasks:        len(in.Tasks),
		NextDeadline: -1,
	}
	for _, t := range in.Tasks {
		if t.Deadline == nil {
			continue
		}
		days := t.Deadline.DaysFrom(now)
		if days < 0 {
			continue
		}
		env.PendingDeadlines++
		if env.NextDeadline < 0 || days < env.NextDeadline {
			env.NextDeadline = days
		}
	}
	return env
}

// Compiler compiles expressions and caches the programs by source text.
type Compiler struct {
	cache *lru.Cache[string, *vm.Program]
	log   *zap.Logger
	now   func() time.Time
}

func NewCompiler(size int, log *zap.Logger) (*Compiler, error) {
	if size < 1 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *vm.Program](size)
	if err != nil {
		return nil, fmt.Errorf("creating filter cache: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{cache: cache, log: log, now: time.Now}, nil
}

// Compile returns a predicate for expression. The expression must
// evaluate to a boolean.
func (c *Compiler) Compile(expression string) (model.Predicate, error) {
	program, ok := c.cache.Get(expression)
	if !ok {
		var err error
		program, err = expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, err
		}
		c.cache.Add(expression, program)
	} else {
		c.log.Debug("filter cache hit", zap.String("expression", expression))
	}

	return func(in model.Internship) bool {
		out, err := expr.Run(program, NewEnv(in, c.now()))
		if err != nil {
			c.log.Warn("filter evaluation failed",
				zap.String("expression", expression),
				zap.Stringer("internship", in.ID),
				zap.Error(err))
			return false
		}
		b, _ := out.(bool)
		return b
	}, nil
}

// Cached reports how many compiled programs are held.
func (c *Compiler) Cached() int { return c.cache.Len() }
