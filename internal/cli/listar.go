package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Setplays/Administracao-de-remedios/internal/previsao"
)

// NewListarCommand creates the listar command.
func NewListarCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "listar",
		Short: "Lista os remédios com previsão de término",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			remedios, err := a.svc.Listar(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REMÉDIO\tDOSES/DIA\tESTOQUE\tDIAS RESTANTES\tDATA PREV. FIM")
			hoje := time.Now()
			for i := range remedios {
				r := &remedios[i]
				dias, dataFim := "N/A", "N/A"
				switch p := previsao.Calcular(r.EstoqueAtual, r.DosesPorDia, hoje); p.Tipo {
				case previsao.Ativa:
					dias = fmt.Sprintf("%d dias", p.DiasRestantes)
					dataFim = p.DataFim.Format("02/01/2006")
				case previsao.Esgotado:
					dias, dataFim = "Acabou!", "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\n",
					r.Nome, r.DosesPorDia.String(), r.EstoqueAtual.String(), r.Unidade, dias, dataFim)
			}
			return w.Flush()
		},
	}
}

// NewHistoricoCommand creates the historico command.
func NewHistoricoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "historico <nome>",
		Short: "Mostra o histórico de movimentos de estoque de um remédio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			r, err := a.resolver(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			movimentos, err := a.svc.Historico(cmd.Context(), r.ID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATA\tTIPO\tQUANTIDADE\tESTOQUE")
			for i := range movimentos {
				m := &movimentos[i]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s → %s\n",
					m.CreatedAt.Format("02/01/2006 15:04"), m.Tipo,
					m.Quantidade.String(), m.EstoqueAnterior.String(), m.EstoqueNovo.String())
			}
			return w.Flush()
		},
	}
}
