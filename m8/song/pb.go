package song

import (
	"github.com/but80/m8kit/m8/instrument"
	pb "github.com/but80/m8kit/pb/m8"
)

// InstrumentBank exports the instruments in use as a protobuf bank.
func (s *Song) InstrumentBank() (*pb.InstrumentBank, error) {
	bank := &pb.InstrumentBank{
		Version: s.Header.Version.String(),
		Layout:  s.Layout.Name,
	}
	for i, inst := range s.Instruments {
		if instrument.IsEmpty(inst) {
			continue
		}
		p, err := instrument.ToPB(inst, i, s.Layout)
		if err != nil {
			return nil, err
		}
		bank.Instruments = append(bank.Instruments, p)
	}
	return bank, nil
}
