package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCadastrarCommand creates the cadastrar command.
func NewCadastrarCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		doses   string
		estoque string
		unidade string
	)

	cmd := &cobra.Command{
		Use:   "cadastrar <nome>",
		Short: "Cadastra um novo remédio",
		Long: `Cadastra um novo remédio com consumo diário e estoque inicial.

Exemplo:
  remedios cadastrar "Losartana 50mg" --doses 2 --estoque 60
  remedios cadastrar "Xarope" --doses 7,5 --estoque 100 --unidade ml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			dosesDia, err := parseQuantidade(doses)
			if err != nil {
				return err
			}
			estoqueInicial, err := parseQuantidade(estoque)
			if err != nil {
				return err
			}

			r, err := a.svc.Cadastrar(cmd.Context(), args[0], dosesDia, estoqueInicial, unidade)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Remédio '%s' cadastrado (id %s).\n", r.Nome, r.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&doses, "doses", "", "doses consumidas por dia (obrigatório)")
	cmd.Flags().StringVar(&estoque, "estoque", "0", "estoque inicial")
	cmd.Flags().StringVar(&unidade, "unidade", "comprimido", "unidade exibida (comprimido, ml, ...)")
	_ = cmd.MarkFlagRequired("doses")

	return cmd
}
