// Package seed loads catalogue, library and staff fixtures from YAML and
// saves them through the usecases, so fixtures obey the same rules as the API.
package seed

import (
	"context"
	"io"
	"log/slog"
	"os"

	"library-service/internal/domain/staff"
	reqdto "library-service/internal/handler/dto/request"
	"library-service/internal/pkg/errs"
	"library-service/internal/usecase"

	"github.com/gin-gonic/gin/binding"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFixture = errs.New("invalid fixture")

type StaffFixture struct {
	Username string `yaml:"username" binding:"required,min=3,max=64"`
	Password string `yaml:"password" binding:"required,min=8,max=72"`
	Role     string `yaml:"role" binding:"required,oneof=librarian admin"`
}

// Fixture is the document layout of a seed file.
type Fixture struct {
	Checkables []reqdto.CreateCheckableRequest `yaml:"checkables"`
	Libraries  []reqdto.CreateLibraryRequest   `yaml:"libraries"`
	Staff      []StaffFixture                  `yaml:"staff"`
}

// Report counts what a run did. Skipped entries already existed.
type Report struct {
	Checkables Counts
	Libraries  Counts
	Staff      Counts
}

type Counts struct {
	Created int
	Skipped int
}

func LoadFile(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, "open seed file")
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*Fixture, error) {
	var fx Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		if errs.Is(err, io.EOF) {
			return &fx, nil
		}
		return nil, errs.Mark(errs.Wrap(err, "decode seed file"), ErrInvalidFixture)
	}
	return &fx, nil
}

// Validate applies the same binding rules the HTTP handlers use.
func (f *Fixture) Validate() error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	for i := range f.Checkables {
		if err := binding.Validator.ValidateStruct(&f.Checkables[i]); err != nil {
			return errs.Mark(errs.Wrapf(err, "checkables[%d]", i), ErrInvalidFixture)
		}
	}
	for i := range f.Libraries {
		if err := binding.Validator.ValidateStruct(&f.Libraries[i]); err != nil {
			return errs.Mark(errs.Wrapf(err, "libraries[%d]", i), ErrInvalidFixture)
		}
	}
	for i := range f.Staff {
		if err := binding.Validator.ValidateStruct(&f.Staff[i]); err != nil {
			return errs.Mark(errs.Wrapf(err, "staff[%d]", i), ErrInvalidFixture)
		}
	}
	return nil
}

type Seeder struct {
	checkables usecase.CheckableService
	libraries  usecase.LibraryService
	auth       usecase.AuthUseCase
	logger     *slog.Logger
}

func NewSeeder(checkables usecase.CheckableService, libraries usecase.LibraryService, auth usecase.AuthUseCase, logger *slog.Logger) *Seeder {
	return &Seeder{checkables: checkables, libraries: libraries, auth: auth, logger: logger}
}

// Run saves checkables first so libraries can reference them. Entries that
// already exist are logged and skipped; any other failure stops the run.
func (s *Seeder) Run(ctx context.Context, f *Fixture) (Report, error) {
	var report Report
	if err := f.Validate(); err != nil {
		return report, err
	}

	for _, req := range f.Checkables {
		c, err := req.ToDomain()
		if err != nil {
			return report, errs.Wrapf(err, "checkable %s", req.ISBN)
		}
		if err := s.checkables.Save(ctx, c); err != nil {
			if !errs.Is(err, errs.ErrResourceExists) {
				return report, err
			}
			s.logger.Info("seed: checkable exists, skipping", "isbn", c.ISBN())
			report.Checkables.Skipped++
			continue
		}
		report.Checkables.Created++
	}

	for _, req := range f.Libraries {
		lib, err := req.ToDomain(ctx, s.checkables.GetByISBN)
		if err != nil {
			return report, errs.Wrapf(err, "library %s", req.Name)
		}
		if err := s.libraries.Save(ctx, lib); err != nil {
			if !errs.Is(err, errs.ErrResourceExists) {
				return report, err
			}
			s.logger.Info("seed: library exists, skipping", "name", lib.Name())
			report.Libraries.Skipped++
			continue
		}
		report.Libraries.Created++
	}

	for _, m := range f.Staff {
		if _, err := s.auth.Register(ctx, m.Username, m.Password, staff.Role(m.Role)); err != nil {
			if !errs.Is(err, errs.ErrResourceExists) {
				return report, errs.Wrapf(err, "staff %s", m.Username)
			}
			s.logger.Info("seed: staff exists, skipping", "username", m.Username)
			report.Staff.Skipped++
			continue
		}
		report.Staff.Created++
	}

	return report, nil
}
